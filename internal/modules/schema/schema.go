// Package schema owns table lifecycle: drop-and-recreate, seed data, and the
// production-only one-shot initialization route.
package schema

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/genesis-zm/genesis-core/internal/config"
	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	Version = 1

	seedAdminUsername  = "admin"
	defaultSeedPassword = "password"
)

// Service (re)creates the schema. There is no migration framework: every
// initialization drops the known tables and rebuilds them from the models.
type Service struct {
	db  *gorm.DB
	cfg *config.AppConfig
}

func NewService(db *gorm.DB, cfg *config.AppConfig) *Service {
	return &Service{db: db, cfg: cfg}
}

// Initialize drops and recreates all tables, then seeds the admin account,
// the schema marker, and (optionally) demo content. Safe to call repeatedly.
func (s *Service) Initialize() error {
	tables := []interface{}{
		&models.UserModel{},
		&models.UserSession{},
		&models.BlogPostModel{},
		&models.TeamMemberModel{},
		&models.TerminalFileModel{},
		&models.QAEntryModel{},
		&models.PaymentMethodModel{},
		&models.SchemaMarker{},
	}

	if err := s.db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := s.db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	if err := s.seedAdmin(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.db.Create(&models.SchemaMarker{
		Version:       Version,
		InitializedAt: time.Now(),
	}).Error; err != nil {
		return fmt.Errorf("write schema marker: %w", err)
	}

	if s.cfg != nil && s.cfg.SeedDemoData {
		if err := s.seedDemo(); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}

// IsInitialized reports whether a schema marker row exists.
func (s *Service) IsInitialized() bool {
	if !s.db.Migrator().HasTable(&models.SchemaMarker{}) {
		return false
	}
	var count int64
	s.db.Model(&models.SchemaMarker{}).Count(&count)
	return count > 0
}

func (s *Service) seedAdmin() error {
	password := defaultSeedPassword
	if s.cfg != nil && s.cfg.AdminPassword != "" {
		password = s.cfg.AdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Create(&models.UserModel{
		Username: seedAdminUsername,
		Password: string(hash),
	}).Error
}

// seedDemo inserts the sample terminal files shown on a fresh local install.
func (s *Service) seedDemo() error {
	files := []models.TerminalFileModel{
		{Filename: "sample_audio.mp3", Description: "Sample MP3 upload"},
		{Filename: "sniffer_sim.py", Description: "Packet sniffer simulation"},
		{Filename: "exploit_demo.py", Description: "Basic exploit POC script"},
		{Filename: "terminal_intro.mp4", Description: "Genesis terminal intro"},
		{Filename: "manual.pdf", Description: "How to use Genesis"},
	}
	return s.db.Create(&files).Error
}

// Handler exposes the one-shot production initialization route.
type Handler struct {
	svc  *Service
	cfg  *config.AppConfig
	done atomic.Bool
}

func NewHandler(svc *Service, cfg *config.AppConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/init-database-on-first-run", h.oneTimeInit)
}

// oneTimeInit runs Initialize at most once. The in-process flag does not
// survive a restart; the persisted schema marker covers that gap, so a second
// invocation refuses in either case without touching the schema.
func (h *Handler) oneTimeInit(c *gin.Context) {
	if !h.cfg.IsProduction() {
		response.Forbidden(c, "You are in a local environment. This route is for production use only.")
		return
	}
	if h.done.Load() || h.svc.IsInitialized() {
		response.Forbidden(c, "Database has already been initialized. This route is now disabled.")
		return
	}
	if err := h.svc.Initialize(); err != nil {
		response.InternalError(c, err)
		return
	}
	h.done.Store(true)
	response.OK(c, gin.H{"message": "The database has been initialized. This route is now permanently disabled."})
}
