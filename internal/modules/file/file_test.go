package file

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/genesis-zm/genesis-core/internal/config"
	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
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

func localStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(&config.AppConfig{UploadDir: t.TempDir()})
}

func TestAcceptRejectsDisallowedExtension(t *testing.T) {
	store := localStore(t)

	_, _, err := store.Accept(makeFileHeader(t, "malware.exe", []byte("MZ")))
	if !errors.Is(err, apperr.ErrUploadRejected) {
		t.Fatalf("expected upload rejection, got %v", err)
	}
}

func TestAcceptClassifiesUppercaseImage(t *testing.T) {
	store := localStore(t)

	stored, media, err := store.Accept(makeFileHeader(t, "photo.JPG", []byte("jpegdata")))
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if media != models.MediaImage {
		t.Errorf("media type = %q, want %q", media, models.MediaImage)
	}
	if stored != "uploads/photo.JPG" {
		t.Errorf("stored path = %q", stored)
	}
	if _, err := os.Stat(filepath.Join(store.cfg.ResolveUploadDir(), "photo.JPG")); err != nil {
		t.Errorf("file not written to disk: %v", err)
	}
}

func TestAcceptRefusedInProduction(t *testing.T) {
	store := NewStore(&config.AppConfig{DatabaseURL: "postgres://genesis:pw@db/genesis", UploadDir: t.TempDir()})

	_, _, err := store.Accept(makeFileHeader(t, "photo.png", []byte("png")))
	if !errors.Is(err, apperr.ErrUploadsDisabled) {
		t.Fatalf("expected uploads-disabled error, got %v", err)
	}
}

func TestAcceptRejectsMissingExtension(t *testing.T) {
	store := localStore(t)

	_, _, err := store.Accept(makeFileHeader(t, "README", []byte("hi")))
	if !errors.Is(err, apperr.ErrUploadRejected) {
		t.Fatalf("expected upload rejection, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"../../etc/passwd", "passwd"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"  spaced.pdf  ", "spaced.pdf"},
		{"weird$name.mp3", "weird_name.mp3"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		ext  string
		want models.MediaType
	}{
		{"png", models.MediaImage},
		{"JPEG", models.MediaImage},
		{"mp4", models.MediaVideo},
		{"mp3", models.MediaAudio},
		{"pdf", models.MediaPDF},
		{"exe", ""},
	}
	for _, tc := range cases {
		if got := Classify(tc.ext); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}
