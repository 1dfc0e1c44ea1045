// Package payments manages the support-page payment methods, always grouped
// by category.
package payments

import (
	"errors"
	"strconv"
	"strings"

	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMethodDTO struct {
	MethodName string `json:"method_name" form:"method_name"`
	Details    string `json:"details"     form:"details"`
	Category   string `json:"category"    form:"category"`
}

// Grouped is the support-page shape: never one undivided list.
type Grouped struct {
	Zambian       []models.PaymentMethodModel `json:"zambian"`
	International []models.PaymentMethodModel `json:"international"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListByCategory returns methods in one category.
func (s *Service) ListByCategory(category models.PaymentCategory) ([]models.PaymentMethodModel, error) {
	if !models.ValidPaymentCategory(category) {
		return nil, apperr.Validation("unknown payment category %q", category)
	}
	var methods []models.PaymentMethodModel
	if err := s.db.Where("category = ?", category).Order("id ASC").Find(&methods).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return methods, nil
}

// ListGrouped returns both category views for the support page.
func (s *Service) ListGrouped() (*Grouped, error) {
	zambian, err := s.ListByCategory(models.PaymentZambian)
	if err != nil {
		return nil, err
	}
	international, err := s.ListByCategory(models.PaymentInternational)
	if err != nil {
		return nil, err
	}
	return &Grouped{Zambian: zambian, International: international}, nil
}

// Create validates the category against the closed set before any row is
// written.
func (s *Service) Create(dto *CreateMethodDTO) (*models.PaymentMethodModel, error) {
	if strings.TrimSpace(dto.MethodName) == "" {
		return nil, apperr.Validation("method_name is required")
	}
	if strings.TrimSpace(dto.Details) == "" {
		return nil, apperr.Validation("details is required")
	}
	category := models.PaymentCategory(strings.TrimSpace(dto.Category))
	if !models.ValidPaymentCategory(category) {
		return nil, apperr.Validation("category must be Zambian or International")
	}

	method := models.PaymentMethodModel{
		MethodName: dto.MethodName,
		Details:    dto.Details,
		Category:   category,
	}
	if err := s.db.Create(&method).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &method, nil
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.PaymentMethodModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("payment method")
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	r.GET("/support", h.support)

	admin := r.Group("/admin/payments", authMW)
	admin.GET("", h.adminList)
	admin.POST("", h.create)
	admin.POST("/delete/:id", h.delete)
}

func (h *Handler) support(c *gin.Context) {
	grouped, err := h.svc.ListGrouped()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, grouped)
}

func (h *Handler) adminList(c *gin.Context) {
	grouped, err := h.svc.ListGrouped()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, grouped)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateMethodDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	method, err := h.svc.Create(&dto)
	switch {
	case err == nil:
		response.Created(c, method)
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Payment method deleted."})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
