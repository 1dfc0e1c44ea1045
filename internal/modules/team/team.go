package team

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

type CreateMemberDTO struct {
	Name  string `json:"name"  form:"name"`
	Role  string `json:"role"  form:"role"`
	Bio   string `json:"bio"   form:"bio"`
	Image string `json:"image" form:"image"`
}

type UpdateMemberDTO struct {
	Name  *string `json:"name"  form:"name"`
	Role  *string `json:"role"  form:"role"`
	Bio   *string `json:"bio"   form:"bio"`
	Image *string `json:"image" form:"image"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the roster in insertion order.
func (s *Service) List() ([]models.TeamMemberModel, error) {
	var members []models.TeamMemberModel
	if err := s.db.Order("id ASC").Find(&members).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return members, nil
}

func (s *Service) Get(id uint) (*models.TeamMemberModel, error) {
	var member models.TeamMemberModel
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("team member")
		}
		return nil, apperr.Storage(err)
	}
	return &member, nil
}

func (s *Service) Create(dto *CreateMemberDTO) (*models.TeamMemberModel, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if strings.TrimSpace(dto.Role) == "" {
		return nil, apperr.Validation("role is required")
	}
	member := models.TeamMemberModel{Name: dto.Name, Role: dto.Role, Bio: dto.Bio, Image: dto.Image}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &member, nil
}

func (s *Service) Update(id uint, dto *UpdateMemberDTO) (*models.TeamMemberModel, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		if strings.TrimSpace(*dto.Name) == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		updates["name"] = *dto.Name
	}
	if dto.Role != nil {
		if strings.TrimSpace(*dto.Role) == "" {
			return nil, apperr.Validation("role cannot be empty")
		}
		updates["role"] = *dto.Role
	}
	if dto.Bio != nil {
		updates["bio"] = *dto.Bio
	}
	if dto.Image != nil {
		updates["image"] = *dto.Image
	}
	if len(updates) == 0 {
		return member, nil
	}
	if err := s.db.Model(member).Updates(updates).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return member, nil
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.TeamMemberModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("team member")
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	r.GET("/team", h.list)

	admin := r.Group("/admin/team", authMW)
	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.POST("/update/:id", h.update)
	admin.POST("/delete/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	members, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, members)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateMemberDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	member, err := h.svc.Create(&dto)
	switch {
	case err == nil:
		response.Created(c, member)
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	var dto UpdateMemberDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	member, err := h.svc.Update(id, &dto)
	switch {
	case err == nil:
		response.OK(c, member)
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c)
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
	response.OK(c, gin.H{"message": "Team member removed."})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
