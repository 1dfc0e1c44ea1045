package app

import (
	"time"

	"github.com/genesis-zm/genesis-core/internal/middleware"
	"github.com/genesis-zm/genesis-core/internal/modules/auth"
	"github.com/genesis-zm/genesis-core/internal/modules/blog"
	"github.com/genesis-zm/genesis-core/internal/modules/chatbot"
	"github.com/genesis-zm/genesis-core/internal/modules/file"
	"github.com/genesis-zm/genesis-core/internal/modules/payments"
	"github.com/genesis-zm/genesis-core/internal/modules/qa"
	"github.com/genesis-zm/genesis-core/internal/modules/schema"
	"github.com/genesis-zm/genesis-core/internal/modules/team"
	"github.com/genesis-zm/genesis-core/internal/modules/terminal"
	"github.com/genesis-zm/genesis-core/internal/modules/termfiles"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(schemaSvc *schema.Service) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.NotFound(c) })

	// Uploaded media is only stored (and therefore only served) locally.
	if a.cfg.UploadsEnabled() {
		r.Static("/uploads", a.cfg.ResolveUploadDir())
	}

	root := r.Group("")

	siteInfo := gin.H{
		"name":    "genesis-core",
		"tagline": "Genesis — build, break, broadcast.",
		"pages":   []string{"/blog", "/team", "/services", "/support", "/terminal", "/gbj", "/q-and-a"},
	}
	root.GET("/", func(c *gin.Context) { c.PureJSON(200, siteInfo) })
	root.GET("/services", func(c *gin.Context) {
		c.PureJSON(200, gin.H{"services": []gin.H{
			{"name": "Web builds", "details": "Sites and backends for small brands."},
			{"name": "Security demos", "details": "Educational exploit and tooling walkthroughs."},
			{"name": "Media production", "details": "Audio and video content."},
		}})
	})

	// Public write routes share one limiter; login failures get their own.
	loginLimiter := middleware.NewRateLimiter(5, 15*time.Minute, 15*time.Minute)
	publicLimiter := middleware.NewRateLimiter(20, time.Minute, 5*time.Minute)

	fileStore := file.NewStore(a.cfg)
	termfilesSvc := termfiles.NewService(db)

	auth.NewHandler(auth.NewService(db), loginLimiter).RegisterRoutes(root, authMW)
	blog.NewHandler(blog.NewService(db, fileStore)).RegisterRoutes(root, authMW)
	team.NewHandler(team.NewService(db)).RegisterRoutes(root, authMW)
	qa.NewHandler(qa.NewService(db), publicLimiter).RegisterRoutes(root, authMW)
	payments.NewHandler(payments.NewService(db)).RegisterRoutes(root, authMW)
	termfiles.NewHandler(termfilesSvc).RegisterRoutes(root, authMW)
	terminal.NewHandler(terminal.NewService(termfilesSvc)).RegisterRoutes(root)
	chatbot.NewHandler().RegisterRoutes(root)

	schema.NewHandler(schemaSvc, a.cfg).RegisterRoutes(root)
}
