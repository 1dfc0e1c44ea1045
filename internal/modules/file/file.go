// Package file stores admin uploads on local disk. Production deployments
// run on an ephemeral filesystem, so the store refuses uploads there instead
// of accepting writes that would vanish.
package file

import (
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/genesis-zm/genesis-core/internal/config"
	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {},
	"pdf": {}, "mp3": {}, "mp4": {},
}

var unsafeNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Store saves uploads under the configured directory and hands back the
// relative path recorded on the owning record.
type Store struct {
	cfg *config.AppConfig
}

func NewStore(cfg *config.AppConfig) *Store { return &Store{cfg: cfg} }

// Accept validates, sanitizes, and persists one uploaded file, returning the
// stored relative path and the derived media classification.
func (s *Store) Accept(fh *multipart.FileHeader) (string, models.MediaType, error) {
	if !s.cfg.UploadsEnabled() {
		return "", "", apperr.ErrUploadsDisabled
	}

	name := SanitizeFilename(fh.Filename)
	ext := extensionOf(name)
	if ext == "" {
		return "", "", apperr.UploadRejected("filename has no extension")
	}
	if _, ok := allowedExtensions[ext]; !ok {
		return "", "", apperr.UploadRejected("file type .%s is not allowed", ext)
	}

	dir := s.cfg.ResolveUploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", apperr.Storage(err)
	}
	if err := saveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
		return "", "", apperr.Storage(err)
	}

	return path.Join("uploads", name), Classify(ext), nil
}

// SanitizeFilename strips path components and any character that could be
// used for traversal before the name becomes a storage key.
func SanitizeFilename(original string) string {
	name := filepath.Base(strings.TrimSpace(original))
	name = strings.ReplaceAll(name, "..", "")
	name = unsafeNamePattern.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// Classify maps an extension to its media classification.
func Classify(ext string) models.MediaType {
	switch strings.ToLower(ext) {
	case "png", "jpg", "jpeg", "gif":
		return models.MediaImage
	case "mp4":
		return models.MediaVideo
	case "mp3":
		return models.MediaAudio
	case "pdf":
		return models.MediaPDF
	default:
		return ""
	}
}

func extensionOf(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return ext
}

func saveUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
