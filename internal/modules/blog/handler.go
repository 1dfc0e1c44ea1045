package blog

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
)

type postSummary struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	DatePosted time.Time `json:"date_posted"`
}

type postResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	ContentHTML string           `json:"content_html"`
	DatePosted  time.Time        `json:"date_posted"`
	MediaType   models.MediaType `json:"media_type,omitempty"`
	FilePath    string           `json:"file_path,omitempty"`
	YouTubeURL  string           `json:"youtube_url,omitempty"`
}

type Handler struct {
	svc      *Service
	markdown goldmark.Markdown
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, markdown: goldmark.New()}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	r.GET("/blog", h.list)
	r.GET("/blog/:id", h.get)

	admin := r.Group("/admin/blog", authMW)
	admin.GET("", h.adminList)
	admin.POST("", h.create)
	admin.POST("/delete/:id", h.delete)
	admin.POST("/update/:id", h.update)
}

// list is the public index: id, title and date only.
func (h *Handler) list(c *gin.Context) {
	posts, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]postSummary, len(posts))
	for i, p := range posts {
		out[i] = postSummary{ID: p.ID, Title: p.Title, DatePosted: p.DatePosted}
	}
	response.OK(c, out)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFoundMsg(c, "Post Not Found")
		return
	}
	post, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.NotFoundMsg(c, "Post Not Found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.toResponse(post))
}

func (h *Handler) adminList(c *gin.Context) {
	posts, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]postResponse, len(posts))
	for i := range posts {
		out[i] = h.toResponse(&posts[i])
	}
	response.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	upload, _ := c.FormFile("file")

	post, err := h.svc.Create(&dto, upload)
	switch {
	case err == nil:
		response.Created(c, h.toResponse(post))
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrUploadsDisabled):
		response.UnprocessableEntity(c, "File uploads are disabled on the live server.")
	case errors.Is(err, apperr.ErrUploadRejected):
		response.UnprocessableEntity(c, err.Error())
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
	var dto UpdatePostDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Update(id, &dto)
	switch {
	case err == nil:
		response.OK(c, h.toResponse(post))
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
	response.OK(c, gin.H{"message": "Blog post deleted."})
}

func (h *Handler) toResponse(p *models.BlogPostModel) postResponse {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(p.Content), &buf); err != nil {
		buf.Reset()
	}
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		ContentHTML: buf.String(),
		DatePosted:  p.DatePosted,
		MediaType:   p.MediaType,
		FilePath:    p.FilePath,
		YouTubeURL:  p.YouTubeURL,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
