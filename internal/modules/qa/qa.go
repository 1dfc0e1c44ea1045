// Package qa runs the public Q&A board. Questions arrive unanswered; an
// admin answers each at most once, and only answered entries are public.
package qa

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/genesis-zm/genesis-core/internal/middleware"
	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrAlreadyAnswered refuses re-answering; the only way to change an answer
// is delete and recreate.
var ErrAlreadyAnswered = errors.New("entry already answered")

type AskDTO struct {
	Username string `json:"username" form:"username"`
	Question string `json:"question" form:"question"`
}

type AnswerDTO struct {
	Answer string `json:"answer" form:"answer"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Ask records a new unanswered question.
func (s *Service) Ask(dto *AskDTO) (*models.QAEntryModel, error) {
	if strings.TrimSpace(dto.Username) == "" {
		return nil, apperr.Validation("username is required")
	}
	if strings.TrimSpace(dto.Question) == "" {
		return nil, apperr.Validation("question is required")
	}
	entry := models.QAEntryModel{
		Username:  dto.Username,
		Question:  dto.Question,
		DateAsked: time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &entry, nil
}

// ListAnswered is the public view: answered entries only, newest answer
// first.
func (s *Service) ListAnswered() ([]models.QAEntryModel, error) {
	var entries []models.QAEntryModel
	err := s.db.Where("is_answered = ?", true).
		Order("date_answered DESC").Find(&entries).Error
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return entries, nil
}

// ListUnanswered is the admin queue, oldest question first.
func (s *Service) ListUnanswered() ([]models.QAEntryModel, error) {
	var entries []models.QAEntryModel
	err := s.db.Where("is_answered = ?", false).
		Order("date_asked ASC").Find(&entries).Error
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return entries, nil
}

// Answer sets answer, date_answered and is_answered together in a single
// UPDATE, so no intermediate state is ever persisted. Answering an already
// answered entry is refused.
func (s *Service) Answer(id uint, answer string) (*models.QAEntryModel, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, apperr.Validation("answer is required")
	}

	now := time.Now().UTC()
	res := s.db.Model(&models.QAEntryModel{}).
		Where("id = ? AND is_answered = ?", id, false).
		Updates(map[string]interface{}{
			"answer":        answer,
			"date_answered": now,
			"is_answered":   true,
		})
	if res.Error != nil {
		return nil, apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		var entry models.QAEntryModel
		if err := s.db.First(&entry, "id = ?", id).Error; err == nil {
			return nil, ErrAlreadyAnswered
		}
		return nil, apperr.NotFound("question")
	}

	var entry models.QAEntryModel
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &entry, nil
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.QAEntryModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("question")
	}
	return nil
}

type Handler struct {
	svc     *Service
	limiter *middleware.RateLimiter
}

func NewHandler(svc *Service, limiter *middleware.RateLimiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	r.GET("/q-and-a", h.publicList)
	r.POST("/q-and-a", h.ask)

	admin := r.Group("/admin/q-and-a", authMW)
	admin.GET("", h.adminList)
	admin.POST("/answer/:id", h.answer)
	admin.POST("/delete/:id", h.delete)
}

func (h *Handler) publicList(c *gin.Context) {
	entries, err := h.svc.ListAnswered()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, entries)
}

func (h *Handler) ask(c *gin.Context) {
	ip := c.ClientIP()
	if !h.limiter.Allow(ip) {
		response.TooManyRequests(c)
		return
	}

	var dto AskDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.svc.Ask(&dto)
	switch {
	case err == nil:
		response.Created(c, gin.H{"id": entry.ID, "message": "Your question has been submitted."})
	case errors.Is(err, apperr.ErrValidation):
		h.limiter.RecordFailure(ip)
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

// adminList exposes both views: the unanswered queue and the answered
// archive. They are distinct lists, not one sorted list.
func (h *Handler) adminList(c *gin.Context) {
	unanswered, err := h.svc.ListUnanswered()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	answered, err := h.svc.ListAnswered()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"unanswered": unanswered, "answered": answered})
}

func (h *Handler) answer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c)
		return
	}
	var dto AnswerDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.svc.Answer(id, dto.Answer)
	switch {
	case err == nil:
		response.OK(c, entry)
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, ErrAlreadyAnswered):
		response.UnprocessableEntity(c, "This question has already been answered.")
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
	response.OK(c, gin.H{"message": "Question deleted."})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
