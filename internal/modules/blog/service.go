package blog

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/modules/file"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"gorm.io/gorm"
)

type CreatePostDTO struct {
	Title      string `json:"title"       form:"title"`
	Content    string `json:"content"     form:"content"`
	YouTubeURL string `json:"youtube_url" form:"youtube_url"`
}

type UpdatePostDTO struct {
	Title      *string `json:"title"       form:"title"`
	Content    *string `json:"content"     form:"content"`
	YouTubeURL *string `json:"youtube_url" form:"youtube_url"`
}

type Service struct {
	db    *gorm.DB
	files *file.Store
}

func NewService(db *gorm.DB, files *file.Store) *Service {
	return &Service{db: db, files: files}
}

// List returns all posts, newest first.
func (s *Service) List() ([]models.BlogPostModel, error) {
	var posts []models.BlogPostModel
	if err := s.db.Order("date_posted DESC").Find(&posts).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return posts, nil
}

func (s *Service) Get(id uint) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post")
		}
		return nil, apperr.Storage(err)
	}
	return &post, nil
}

// Create publishes a post. A post carries either an external YouTube URL or
// one uploaded file; the URL wins when both arrive, matching the original
// publishing flow, and media_type is derived from whichever is used.
func (s *Service) Create(dto *CreatePostDTO, upload *multipart.FileHeader) (*models.BlogPostModel, error) {
	if strings.TrimSpace(dto.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if strings.TrimSpace(dto.Content) == "" {
		return nil, apperr.Validation("content is required")
	}

	post := models.BlogPostModel{
		Title:      dto.Title,
		Content:    dto.Content,
		DatePosted: time.Now().UTC(),
	}

	switch {
	case strings.TrimSpace(dto.YouTubeURL) != "":
		post.YouTubeURL = strings.TrimSpace(dto.YouTubeURL)
		post.MediaType = models.MediaYouTube
	case upload != nil && upload.Filename != "":
		storedPath, mediaType, err := s.files.Accept(upload)
		if err != nil {
			return nil, err
		}
		post.FilePath = storedPath
		post.MediaType = mediaType
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return &post, nil
}

// Update edits title, content, or the external URL. Attachments are not
// re-uploadable in place; delete and recreate the post instead.
func (s *Service) Update(id uint, dto *UpdatePostDTO) (*models.BlogPostModel, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, apperr.Validation("title cannot be empty")
		}
		updates["title"] = *dto.Title
	}
	if dto.Content != nil {
		if strings.TrimSpace(*dto.Content) == "" {
			return nil, apperr.Validation("content cannot be empty")
		}
		updates["content"] = *dto.Content
	}
	if dto.YouTubeURL != nil {
		updates["youtube_url"] = strings.TrimSpace(*dto.YouTubeURL)
		if strings.TrimSpace(*dto.YouTubeURL) != "" {
			updates["media_type"] = models.MediaYouTube
			updates["file_path"] = ""
		} else if post.FilePath == "" {
			updates["media_type"] = ""
		}
	}
	if len(updates) == 0 {
		return post, nil
	}
	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return post, nil
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.BlogPostModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("post")
	}
	return nil
}
