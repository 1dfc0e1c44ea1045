package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/genesis-zm/genesis-core/internal/config"
	"github.com/genesis-zm/genesis-core/internal/database"
	"github.com/genesis-zm/genesis-core/internal/middleware"
	"github.com/genesis-zm/genesis-core/internal/modules/schema"
	jwtpkg "github.com/genesis-zm/genesis-core/internal/pkg/jwt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
}

// New initializes the application: config → store → schema → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	jwtpkg.SetSecret(cfg.SecretKey)

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	schemaSvc := schema.NewService(db, cfg)
	if !cfg.IsProduction() && !schemaSvc.IsInitialized() {
		// Local installs bootstrap themselves; production goes through the
		// one-shot init route instead.
		if err := schemaSvc.Initialize(); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		logger.Info("local database initialized", zap.String("path", cfg.SQLitePath))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && cfg.IsProduction() {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	app := &App{cfg: cfg, router: router, db: db, logger: logger}
	app.registerRoutes(schemaSvc)

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
