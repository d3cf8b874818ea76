package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Conversation size limits. Inbound validation clamps to MaxInboundMessages,
// assembly clamps again to MaxHistoryMessages before rendering.
const (
	MaxInboundMessages = 10
	MaxHistoryMessages = 6
	MaxMessageChars    = 2000
	MaxRenderedChars   = 1500
)

// ClampMessages returns the last min(len(messages), max) messages, preserving
// original relative order. Never returns nil for non-nil input.
func ClampMessages(messages []domain.ChatMessage, max int) []domain.ChatMessage {
	if max <= 0 || len(messages) == 0 {
		return []domain.ChatMessage{}
	}
	if len(messages) <= max {
		return messages
	}
	return messages[len(messages)-max:]
}

// TruncateContent cuts a message body to the per-message byte limit. A
// multi-byte rune straddling the boundary is dropped whole so the result
// stays valid UTF-8.
func TruncateContent(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	cut := content[:limit]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// RenderHistory renders the clamped conversation as "role: content" lines,
// then truncates the whole block to the rendered-text limit.
func RenderHistory(messages []domain.ChatMessage) string {
	clamped := ClampMessages(messages, MaxHistoryMessages)
	lines := make([]string, 0, len(clamped))
	for _, m := range clamped {
		lines = append(lines, m.Role+": "+TruncateContent(m.Content, MaxMessageChars))
	}
	rendered := strings.Join(lines, "\n")
	if len(rendered) > MaxRenderedChars {
		rendered = TruncateContent(rendered, MaxRenderedChars)
	}
	return rendered
}
