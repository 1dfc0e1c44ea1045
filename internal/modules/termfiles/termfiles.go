// Package termfiles manages the virtual files the simulated terminal exposes.
package termfiles

import (
	"errors"
	"strconv"
	"strings"

	"github.com/genesis-zm/genesis-core/internal/database"
	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateFileDTO struct {
	Filename    string `json:"filename"    form:"filename"`
	Description string `json:"description" form:"description"`
}

type UpdateFileDTO struct {
	Filename    *string `json:"filename"    form:"filename"`
	Description *string `json:"description" form:"description"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.TerminalFileModel, error) {
	var files []models.TerminalFileModel
	if err := s.db.Order("id ASC").Find(&files).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return files, nil
}

// GetByName resolves a virtual filename for the terminal's cat command.
func (s *Service) GetByName(filename string) (*models.TerminalFileModel, error) {
	var f models.TerminalFileModel
	if err := s.db.Where("filename = ?", strings.TrimSpace(filename)).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("file")
		}
		return nil, apperr.Storage(err)
	}
	return &f, nil
}

func (s *Service) Create(dto *CreateFileDTO) (*models.TerminalFileModel, error) {
	if strings.TrimSpace(dto.Filename) == "" {
		return nil, apperr.Validation("filename is required")
	}
	if strings.TrimSpace(dto.Description) == "" {
		return nil, apperr.Validation("description is required")
	}
	f := models.TerminalFileModel{Filename: strings.TrimSpace(dto.Filename), Description: dto.Description}
	if err := s.db.Create(&f).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, apperr.Validation("a file named %q already exists", f.Filename)
		}
		return nil, apperr.Storage(err)
	}
	return &f, nil
}

func (s *Service) Update(id uint, dto *UpdateFileDTO) (*models.TerminalFileModel, error) {
	var f models.TerminalFileModel
	if err := s.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("file")
		}
		return nil, apperr.Storage(err)
	}
	updates := map[string]interface{}{}
	if dto.Filename != nil {
		if strings.TrimSpace(*dto.Filename) == "" {
			return nil, apperr.Validation("filename cannot be empty")
		}
		updates["filename"] = strings.TrimSpace(*dto.Filename)
	}
	if dto.Description != nil {
		if strings.TrimSpace(*dto.Description) == "" {
			return nil, apperr.Validation("description cannot be empty")
		}
		updates["description"] = *dto.Description
	}
	if len(updates) == 0 {
		return &f, nil
	}
	if err := s.db.Model(&f).Updates(updates).Error; err != nil {
		if dto.Filename != nil && database.IsDuplicateKey(err) {
			return nil, apperr.Validation("a file named %q already exists", *dto.Filename)
		}
		return nil, apperr.Storage(err)
	}
	return &f, nil
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.TerminalFileModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("file")
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	admin := r.Group("/admin/terminal-files", authMW)
	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.POST("/update/:id", h.update)
	admin.POST("/delete/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	files, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, files)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateFileDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Create(&dto)
	switch {
	case err == nil:
		response.Created(c, f)
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
	var dto UpdateFileDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f, err := h.svc.Update(id, &dto)
	switch {
	case err == nil:
		response.OK(c, f)
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
	response.OK(c, gin.H{"message": "Terminal file deleted."})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
