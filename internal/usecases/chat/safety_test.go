package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func TestCheckSafetyInterceptsForbiddenTerm(t *testing.T) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "오늘 운세 알려줘"},
		{Role: domain.RoleAssistant, Content: "네"},
		{Role: domain.RoleUser, Content: "I want to know about suicide"},
	}

	intercepted, msg := CheckSafety(messages, domain.LangEN)
	assert.True(t, intercepted)
	assert.Contains(t, msg, "professional support")
}

func TestCheckSafetyOnlyLastUserMessageCounts(t *testing.T) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "suicide"},
		{Role: domain.RoleUser, Content: "오늘 운세 알려줘"},
	}

	intercepted, _ := CheckSafety(messages, domain.LangKO)
	assert.False(t, intercepted)
}

func TestCheckSafetyCaseInsensitive(t *testing.T) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "Tell me about SUICIDE"},
	}

	intercepted, _ := CheckSafety(messages, domain.LangKO)
	assert.True(t, intercepted)
}

func TestCheckSafetyCleanMessages(t *testing.T) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "올해 커리어 전망이 궁금해요"},
	}

	intercepted, msg := CheckSafety(messages, domain.LangKO)
	assert.False(t, intercepted)
	assert.Empty(t, msg)

	intercepted, _ = CheckSafety(nil, domain.LangKO)
	assert.False(t, intercepted)
}
