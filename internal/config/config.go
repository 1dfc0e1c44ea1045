package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5000
	defaultSQLitePath = "genesis.db"
	defaultUploadDir  = "static/uploads"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence. A non-empty DatabaseURL switches
// the app into production mode: hosted store, ephemeral filesystem, uploads
// refused.
type AppConfig struct {
	Port           int      `yaml:"port"`
	DatabaseURL    string   `yaml:"database_url"`
	SQLitePath     string   `yaml:"sqlite_path"`
	SecretKey      string   `yaml:"secret_key"`
	UploadDir      string   `yaml:"upload_dir"`
	AdminPassword  string   `yaml:"admin_password"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SeedDemoData   bool     `yaml:"seed_demo_data"`
}

// Load reads the YAML config file (missing file is fine, defaults apply) and
// applies environment overrides.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:       defaultPort,
		SQLitePath: defaultSQLitePath,
		UploadDir:  defaultUploadDir,
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Env-only configuration is the normal production deployment.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.SQLitePath) == "" {
		cfg.SQLitePath = defaultSQLitePath
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		cfg.UploadDir = defaultUploadDir
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GENESIS_SECRET_KEY")); v != "" {
		cfg.SecretKey = v
	}
	if v := strings.TrimSpace(os.Getenv("GENESIS_UPLOAD_DIR")); v != "" {
		cfg.UploadDir = v
	}
	if v := strings.TrimSpace(os.Getenv("GENESIS_SQLITE_PATH")); v != "" {
		cfg.SQLitePath = v
	}
	if v := strings.TrimSpace(os.Getenv("GENESIS_ADMIN_PASSWORD")); v != "" {
		cfg.AdminPassword = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
}

// IsProduction reports whether the app runs against a hosted store. Mirrors
// the deployment convention that production is identified by DATABASE_URL
// being set.
func (c *AppConfig) IsProduction() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// UploadsEnabled reports whether uploaded files can be durably persisted.
// Production deployments run on an ephemeral filesystem, so uploads are
// refused there outright instead of silently lost.
func (c *AppConfig) UploadsEnabled() bool {
	return !c.IsProduction()
}

// ResolveUploadDir returns the absolute upload directory path.
func (c *AppConfig) ResolveUploadDir() string {
	dir := c.UploadDir
	if !filepath.IsAbs(dir) {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, dir)
		}
	}
	return dir
}
