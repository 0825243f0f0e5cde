package common

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/viper"
)

func fileExists(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return nil
}

func ValidateAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return fmt.Errorf("bad address %q: %w", addr, err)
	}
	return nil
}

// ValidateGameConfig checks the game-service settings. In strict mode the
// dataset file must exist; otherwise it is checked only when set, since
// seeding is skipped for an already-populated store.
func ValidateGameConfig(v *viper.Viper, strict bool) error {
	if err := ValidateAddr(v.GetString("http_addr")); err != nil {
		return err
	}
	// Non-strict skips the dataset check: seeding is bypassed entirely
	// when the store already holds catalog rows.
	if strict {
		if err := fileExists(v.GetString("dataset")); err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
	}
	return nil
}

// ValidateUserConfig checks the user-service settings.
func ValidateUserConfig(v *viper.Viper, strict bool) error {
	if err := ValidateAddr(v.GetString("http_addr")); err != nil {
		return err
	}
	if strict && v.GetString("db") == "" {
		return fmt.Errorf("db: empty DSN")
	}
	return nil
}
