package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func messagesOf(contents ...string) []domain.ChatMessage {
	out := make([]domain.ChatMessage, 0, len(contents))
	for _, c := range contents {
		out = append(out, domain.ChatMessage{Role: domain.RoleUser, Content: c})
	}
	return out
}

func TestClampMessagesKeepsLastInOrder(t *testing.T) {
	msgs := messagesOf("a", "b", "c", "d", "e")

	clamped := ClampMessages(msgs, 3)
	assert.Equal(t, messagesOf("c", "d", "e"), clamped)

	// Fewer than max: untouched.
	clamped = ClampMessages(msgs, 10)
	assert.Equal(t, msgs, clamped)

	assert.Empty(t, ClampMessages(msgs, 0))
	assert.Empty(t, ClampMessages(nil, 5))
}

func TestTruncateContent(t *testing.T) {
	assert.Equal(t, "hello", TruncateContent("hello", 10))
	assert.Equal(t, "hel", TruncateContent("hello", 3))

	// A multi-byte rune on the boundary is dropped whole.
	korean := "안녕하세요" // 3 bytes per rune
	cut := TruncateContent(korean, 7)
	assert.Equal(t, "안녕", cut)
}

func TestRenderHistory(t *testing.T) {
	msgs := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "question one"},
		{Role: domain.RoleAssistant, Content: "answer one"},
	}

	rendered := RenderHistory(msgs)
	assert.Equal(t, "user: question one\nassistant: answer one", rendered)
}

func TestRenderHistoryClampsAndTruncates(t *testing.T) {
	long := strings.Repeat("x", 3000)
	msgs := messagesOf("1", "2", "3", "4", "5", "6", "7", long)

	rendered := RenderHistory(msgs)
	// Only the last six messages survive.
	assert.NotContains(t, rendered, "user: 1\n")
	assert.NotContains(t, rendered, "user: 2\n")
	// The whole block stays under the rendered-text cap.
	assert.LessOrEqual(t, len(rendered), MaxRenderedChars)
}
