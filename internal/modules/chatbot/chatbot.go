// Package chatbot implements GBJ, the site's canned-reply bot: a fixed
// keyword table, first match wins, no state between calls.
package chatbot

import (
	"strings"

	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type rule struct {
	keywords []string
	reply    string
}

// rules are checked in order; the first keyword hit produces the reply.
var rules = []rule{
	{[]string{"hello", "hi", "hey"}, "Hello! I'm GBJ. Ask me about Genesis, our services, or how to reach the team."},
	{[]string{"service", "offer"}, "Genesis offers web builds, security demos, and media production. See /services for the full list."},
	{[]string{"support", "pay", "donate"}, "You can support Genesis through the payment methods listed on /support — Zambian and international options are available."},
	{[]string{"team", "who"}, "The Genesis team roster lives at /team."},
	{[]string{"blog", "post", "news"}, "Fresh posts are at /blog."},
	{[]string{"terminal"}, "Try the simulated terminal at /terminal. Start with 'help'."},
	{[]string{"question", "ask"}, "Drop your question on the Q&A board at /q-and-a and the admin will answer it."},
	{[]string{"bye", "goodbye"}, "Goodbye! Come back any time."},
}

const fallbackReply = "I didn't catch that. Ask me about services, support, the team, or the blog."

type MessageDTO struct {
	Message string `json:"message" binding:"required"`
}

// Reply matches the message against the keyword table.
func Reply(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return fallbackReply
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gbj", h.intro)
	r.POST("/api/gbj", h.respond)
}

func (h *Handler) intro(c *gin.Context) {
	response.OK(c, gin.H{"message": "GBJ is online. POST a message to /api/gbj."})
}

func (h *Handler) respond(c *gin.Context) {
	var dto MessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "message is required")
		return
	}
	response.OK(c, gin.H{"response": Reply(dto.Message)})
}
