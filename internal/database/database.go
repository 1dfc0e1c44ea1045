// Package database selects the storage backend once at startup. GORM gives
// every caller the same canonical placeholder syntax and named-field row
// scanning regardless of dialect, so nothing outside this package branches on
// backend identity.
package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genesis-zm/genesis-core/internal/config"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store implied by the configuration: a local SQLite file
// in development, Postgres or MySQL in production depending on the
// DATABASE_URL scheme.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	dialector, err := resolveDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(resolveLogLevel(cfg)),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

func resolveDialector(cfg *config.AppConfig) (gorm.Dialector, error) {
	switch cfg.StoreDialect() {
	case config.DialectSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	case config.DialectMySQL:
		dsn, err := cfg.MySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.New(mysql.Config{DSN: dsn, DefaultStringSize: 191}), nil
	case config.DialectPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported store dialect")
	}
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsProduction() {
		return logger.Warn
	}
	return logger.Silent
}

// IsDuplicateKey reports whether err is a unique-constraint violation on any
// of the supported backends.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
