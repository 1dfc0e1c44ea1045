// Package terminal implements the simulated shell: a fixed command table
// resolved against the terminal-file repository. Command string in,
// plain-text output out; no state between calls.
package terminal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/genesis-zm/genesis-core/internal/modules/termfiles"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const helpText = `Available commands:
  help          show this message
  ls            list files
  cat <file>    print file contents
  whoami        print current user
  date          print server date`

type CommandDTO struct {
	Command string `json:"command" binding:"required"`
}

type Service struct {
	files *termfiles.Service
}

func NewService(files *termfiles.Service) *Service { return &Service{files: files} }

// Execute resolves one command line and returns its output. Unknown commands
// report themselves the way a shell would.
func (s *Service) Execute(line string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "help":
		return helpText, nil
	case "whoami":
		return "guest", nil
	case "date":
		return time.Now().UTC().Format(time.UnixDate), nil
	case "ls":
		return s.list()
	case "cat":
		if len(args) == 0 {
			return "cat: missing operand", nil
		}
		return s.cat(args[0])
	default:
		return fmt.Sprintf("%s: command not found", cmd), nil
	}
}

func (s *Service) list() (string, error) {
	files, err := s.files.List()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Filename
	}
	return strings.Join(names, "\n"), nil
}

func (s *Service) cat(name string) (string, error) {
	f, err := s.files.GetByName(name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Sprintf("cat: %s: No such file or directory", name), nil
		}
		return "", err
	}
	return f.Description, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/terminal", h.intro)
	r.POST("/api/terminal", h.execute)
}

func (h *Handler) intro(c *gin.Context) {
	response.OK(c, gin.H{"message": "Genesis terminal. Type 'help' to get started.", "help": helpText})
}

func (h *Handler) execute(c *gin.Context) {
	var dto CommandDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "command is required")
		return
	}
	output, err := h.svc.Execute(dto.Command)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"output": output})
}
