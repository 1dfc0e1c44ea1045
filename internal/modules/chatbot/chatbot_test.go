package chatbot

import (
	"strings"
	"testing"
)

func TestReplyKeywordMatch(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"Hello there", "I'm GBJ"},
		{"what services do you offer?", "/services"},
		{"how can I support you guys", "/support"},
		{"tell me about the team", "/team"},
		{"any new blog posts?", "/blog"},
		{"is there a terminal?", "/terminal"},
		{"ok bye", "Goodbye"},
	}
	for _, tc := range cases {
		got := Reply(tc.message)
		if !strings.Contains(got, tc.want) {
			t.Errorf("Reply(%q) = %q, want it to mention %q", tc.message, got, tc.want)
		}
	}
}

func TestReplyFirstMatchWins(t *testing.T) {
	// "hello" sits earlier in the table than "blog".
	got := Reply("hello, where is the blog?")
	if !strings.Contains(got, "I'm GBJ") {
		t.Errorf("Reply = %q, want the greeting rule to win", got)
	}
}

func TestReplyCaseInsensitive(t *testing.T) {
	if got := Reply("HELLO"); !strings.Contains(got, "I'm GBJ") {
		t.Errorf("Reply(HELLO) = %q", got)
	}
}

func TestReplyFallback(t *testing.T) {
	got := Reply("zzz qwerty")
	if got != fallbackReply {
		t.Errorf("Reply = %q, want fallback", got)
	}
}
