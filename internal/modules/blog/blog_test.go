package blog

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/genesis-zm/genesis-core/internal/config"
	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/modules/file"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/testutil"
)

func newBlogService(t *testing.T) *Service {
	t.Helper()
	db := testutil.OpenDB(t)
	store := file.NewStore(&config.AppConfig{UploadDir: t.TempDir()})
	return NewService(db, store)
}

func uploadHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("payload")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestCreateRequiresTitleAndContent(t *testing.T) {
	svc := newBlogService(t)

	if _, err := svc.Create(&CreatePostDTO{Content: "body"}, nil); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("missing title: got %v", err)
	}
	if _, err := svc.Create(&CreatePostDTO{Title: "t"}, nil); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("missing content: got %v", err)
	}
}

func TestCreateYouTubeURLWinsOverUpload(t *testing.T) {
	svc := newBlogService(t)

	post, err := svc.Create(&CreatePostDTO{
		Title:      "Launch video",
		Content:    "watch this",
		YouTubeURL: "https://youtu.be/abc123",
	}, uploadHeader(t, "thumb.png"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.MediaType != models.MediaYouTube {
		t.Errorf("media type = %q, want %q", post.MediaType, models.MediaYouTube)
	}
	if post.FilePath != "" {
		t.Errorf("file path = %q, must stay empty when the URL wins", post.FilePath)
	}
	if post.YouTubeURL != "https://youtu.be/abc123" {
		t.Errorf("youtube url = %q", post.YouTubeURL)
	}
}

func TestCreateWithUploadClassifiesMedia(t *testing.T) {
	svc := newBlogService(t)

	post, err := svc.Create(&CreatePostDTO{Title: "New track", Content: "listen"}, uploadHeader(t, "track.mp3"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.MediaType != models.MediaAudio {
		t.Errorf("media type = %q, want %q", post.MediaType, models.MediaAudio)
	}
	if post.FilePath != "uploads/track.mp3" {
		t.Errorf("file path = %q", post.FilePath)
	}
}

func TestCreateRejectedUploadStoresNothing(t *testing.T) {
	svc := newBlogService(t)

	_, err := svc.Create(&CreatePostDTO{Title: "Bad", Content: "nope"}, uploadHeader(t, "malware.exe"))
	if !errors.Is(err, apperr.ErrUploadRejected) {
		t.Fatalf("expected upload rejection, got %v", err)
	}

	var count int64
	svc.db.Model(&models.BlogPostModel{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected upload must not create a post, found %d", count)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := newBlogService(t)

	old := models.BlogPostModel{Title: "Old", Content: "x", DatePosted: time.Now().Add(-time.Hour)}
	recent := models.BlogPostModel{Title: "New", Content: "x", DatePosted: time.Now()}
	svc.db.Create(&old)
	svc.db.Create(&recent)

	posts, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "New" {
		t.Errorf("posts not ordered newest first: %+v", posts)
	}
}

func TestUpdateClearingURLOnTextPost(t *testing.T) {
	svc := newBlogService(t)

	post, err := svc.Create(&CreatePostDTO{Title: "t", Content: "c", YouTubeURL: "https://youtu.be/abc"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := ""
	updated, err := svc.Update(post.ID, &UpdatePostDTO{YouTubeURL: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.YouTubeURL != "" || updated.MediaType != "" {
		t.Errorf("clearing the URL must drop media classification: url=%q media=%q", updated.YouTubeURL, updated.MediaType)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc := newBlogService(t)

	if err := svc.Delete(404); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
