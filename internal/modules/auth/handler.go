package auth

import (
	"errors"
	"net/http"

	"github.com/genesis-zm/genesis-core/internal/middleware"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	sessionpkg "github.com/genesis-zm/genesis-core/internal/pkg/session"
	"github.com/gin-gonic/gin"
)

type LoginDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required"`
}

type Handler struct {
	svc     *Service
	limiter *middleware.RateLimiter
}

func NewHandler(svc *Service, limiter *middleware.RateLimiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	r.GET("/login", h.loginEntry)
	r.POST("/login", h.login)
	r.GET("/logout", authMW, h.logout)

	admin := r.Group("/admin", authMW)
	admin.GET("", h.dashboard)
	admin.GET("/change-password", h.changePasswordEntry)
	admin.POST("/change-password", h.changePassword)
}

// loginEntry is the login entry point unauthenticated admins are redirected
// to. Already-authenticated callers are bounced to the dashboard.
func (h *Handler) loginEntry(c *gin.Context) {
	if _, err := middleware.ValidateToken(h.svc.db, middleware.ExtractToken(c)); err == nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	response.OK(c, gin.H{"message": "POST credentials to /login to authenticate."})
}

func (h *Handler) login(c *gin.Context) {
	ip := c.ClientIP()
	if !h.limiter.Allow(ip) {
		response.TooManyRequests(c)
		return
	}

	var dto LoginDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	token, err := h.svc.Login(dto.Username, dto.Password, ip, c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, apperr.ErrAuth) {
			h.limiter.RecordFailure(ip)
			response.Forbidden(c, "Invalid credentials. Access denied.")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.limiter.Reset(ip)
	c.SetCookie(middleware.SessionCookie, token, int(sessionpkg.DefaultTTL.Seconds()), "/", "", false, true)
	response.OK(c, gin.H{"token": token, "message": "Login successful. Welcome, admin."})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.OK(c, gin.H{"message": "You have been logged out."})
}

func (h *Handler) dashboard(c *gin.Context) {
	response.OK(c, gin.H{
		"username": middleware.CurrentUsername(c),
		"sections": []string{"blog", "team", "terminal-files", "q-and-a", "payments", "change-password"},
	})
}

func (h *Handler) changePasswordEntry(c *gin.Context) {
	response.OK(c, gin.H{"message": "POST old_password and new_password to change the admin password."})
}

func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, "old_password and new_password are required")
		return
	}
	err := h.svc.ChangePassword(middleware.CurrentUserID(c), middleware.CurrentSessionID(c), dto.OldPassword, dto.NewPassword)
	switch {
	case err == nil:
		response.OK(c, gin.H{"message": "Password updated."})
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrAuth):
		response.Forbidden(c, "Current password is incorrect.")
	default:
		response.InternalError(c, err)
	}
}
