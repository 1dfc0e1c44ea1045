// Package testutil provides shared helpers for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/genesis-zm/genesis-core/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens a throwaway SQLite store with the full schema migrated.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.BlogPostModel{},
		&models.TeamMemberModel{},
		&models.TerminalFileModel{},
		&models.QAEntryModel{},
		&models.PaymentMethodModel{},
		&models.SchemaMarker{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// SeedAdmin inserts an admin user with the given password and returns it.
func SeedAdmin(t *testing.T, db *gorm.DB, password string) *models.UserModel {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.UserModel{Username: "admin", Password: string(hash)}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return u
}
