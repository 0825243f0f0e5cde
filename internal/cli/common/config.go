package common

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// LoadServiceViper builds the effective config for one service: env vars
// under the given prefix, then the optional config file, preferring the
// named section when present.
func LoadServiceViper(envPrefix, cfgFile, section string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		slog.Info("config loaded", "file", v.ConfigFileUsed())
		if sub := v.Sub(section); sub != nil {
			sub.SetEnvPrefix(envPrefix)
			sub.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
			sub.AutomaticEnv()
			return sub, nil
		}
	}
	return v, nil
}

// LogSettingsFromViper reads the log.* keys with sane defaults.
func LogSettingsFromViper(v *viper.Viper) LogSettings {
	s := LogSettings{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		File:       v.GetString("log.file"),
		MaxSizeMB:  v.GetInt("log.max_size"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAgeDays: v.GetInt("log.max_age"),
		Compress:   v.GetBool("log.compress"),
	}
	if s.Level == "" {
		s.Level = "info"
	}
	if s.Format == "" {
		s.Format = "console"
	}
	if s.MaxSizeMB == 0 {
		s.MaxSizeMB = 100
	}
	return s
}
