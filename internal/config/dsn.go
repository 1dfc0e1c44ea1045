package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// Dialect identifies the storage backend selected from the connection URL.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// StoreDialect returns the backend implied by the configuration: sqlite when
// no DATABASE_URL is set, otherwise the URL scheme decides.
func (c *AppConfig) StoreDialect() Dialect {
	raw := strings.TrimSpace(c.DatabaseURL)
	if raw == "" {
		return DialectSQLite
	}
	u, err := neturl.Parse(raw)
	if err != nil {
		return DialectPostgres
	}
	switch strings.ToLower(u.Scheme) {
	case "mysql":
		return DialectMySQL
	default:
		// postgres:// and postgresql:// both land here, as does anything a
		// hosting provider hands out without a recognized scheme.
		return DialectPostgres
	}
}

// MySQLDSN converts a mysql:// URL into the driver DSN form. Already-valid
// DSNs pass through untouched.
func (c *AppConfig) MySQLDSN() (string, error) {
	raw := strings.TrimSpace(c.DatabaseURL)
	if _, err := mysqldriver.ParseDSN(raw); err == nil {
		return raw, nil
	}

	u, err := neturl.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}

	dsnCfg := mysqldriver.NewConfig()
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = u.Host
	if _, _, err := net.SplitHostPort(u.Host); err != nil {
		dsnCfg.Addr = net.JoinHostPort(u.Host, "3306")
	}
	if u.User != nil {
		dsnCfg.User = u.User.Username()
		dsnCfg.Passwd, _ = u.User.Password()
	}
	dsnCfg.DBName = strings.TrimPrefix(u.Path, "/")
	dsnCfg.ParseTime = true
	dsnCfg.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		if len(values) > 0 {
			dsnCfg.Params[key] = values[0]
		}
	}
	return dsnCfg.FormatDSN(), nil
}
