package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DriverFor selects a gorm driver name from the DSN shape. Anything that
// is not recognisably postgres or mysql is treated as a sqlite file path.
func DriverFor(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return "postgres"
	case strings.HasPrefix(dsn, "mysql://"), strings.Contains(dsn, "@tcp("):
		return "mysql"
	default:
		return "sqlite"
	}
}

// Open connects to the store selected by dsn. An empty dsn falls back to a
// local sqlite file at fallbackPath (parent directory created on demand).
// TranslateError is enabled so uniqueness violations surface uniformly as
// gorm.ErrDuplicatedKey across drivers.
func Open(dsn, fallbackPath string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if dsn == "" {
		if dir := filepath.Dir(fallbackPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(fallbackPath), cfg)
	}
	switch DriverFor(dsn) {
	case "postgres":
		return gorm.Open(gpostgres.Open(dsn), cfg)
	case "mysql":
		return gorm.Open(gmysql.Open(normalizeMySQLDSN(dsn)), cfg)
	default:
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}

// normalizeMySQLDSN converts a mysql:// URL into the go-sql-driver form
// user:pass@tcp(host:port)/db. Native DSNs pass through untouched.
func normalizeMySQLDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "mysql://") {
		return dsn
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return strings.TrimPrefix(dsn, "mysql://")
	}
	host := u.Host
	if u.Port() == "" {
		host += ":3306"
	}
	cred := ""
	if u.User != nil {
		cred = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			cred += ":" + pw
		}
		cred += "@"
	}
	db := strings.TrimPrefix(u.Path, "/")
	out := fmt.Sprintf("%stcp(%s)/%s", cred, host, db)
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}
