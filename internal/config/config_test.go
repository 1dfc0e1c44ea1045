package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("port = %d, want 5000", cfg.Port)
	}
	if cfg.SQLitePath != "genesis.db" {
		t.Errorf("sqlite path = %q", cfg.SQLitePath)
	}
	if cfg.UploadDir != "static/uploads" {
		t.Errorf("upload dir = %q", cfg.UploadDir)
	}
	if cfg.IsProduction() {
		t.Error("empty DATABASE_URL must mean local mode")
	}
}

func TestLoadYAMLAndEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "port: 8080\nsecret_key: from-yaml\nsqlite_path: file.db\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("GENESIS_SECRET_KEY", "from-env")
	t.Setenv("PORT", "9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SecretKey != "from-env" {
		t.Errorf("secret key = %q, env must override yaml", cfg.SecretKey)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, env must override yaml", cfg.Port)
	}
	if cfg.SQLitePath != "file.db" {
		t.Errorf("sqlite path = %q, yaml value must survive", cfg.SQLitePath)
	}
}

func TestProductionModeAndUploads(t *testing.T) {
	cfg := &AppConfig{DatabaseURL: "postgres://u:p@host/db"}
	if !cfg.IsProduction() {
		t.Error("DATABASE_URL set must mean production")
	}
	if cfg.UploadsEnabled() {
		t.Error("uploads must be disabled in production")
	}
}

func TestStoreDialect(t *testing.T) {
	cases := []struct {
		url  string
		want Dialect
	}{
		{"", DialectSQLite},
		{"mysql://u:p@host/db", DialectMySQL},
		{"postgres://u:p@host/db", DialectPostgres},
		{"postgresql://u:p@host/db", DialectPostgres},
	}
	for _, tc := range cases {
		cfg := &AppConfig{DatabaseURL: tc.url}
		if got := cfg.StoreDialect(); got != tc.want {
			t.Errorf("StoreDialect(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestMySQLDSNFromURL(t *testing.T) {
	cfg := &AppConfig{DatabaseURL: "mysql://genesis:pw@db.example.com/genesis"}
	dsn, err := cfg.MySQLDSN()
	if err != nil {
		t.Fatalf("dsn: %v", err)
	}
	for _, want := range []string{"genesis:pw@tcp(db.example.com:3306)/genesis", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("dsn %q missing %q", dsn, want)
		}
	}
}

func TestMySQLDSNPassthrough(t *testing.T) {
	raw := "genesis:pw@tcp(localhost:3306)/genesis?parseTime=true"
	cfg := &AppConfig{DatabaseURL: raw}
	dsn, err := cfg.MySQLDSN()
	if err != nil {
		t.Fatalf("dsn: %v", err)
	}
	if dsn != raw {
		t.Errorf("valid DSN must pass through untouched, got %q", dsn)
	}
}
