package chat

import (
	"strings"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Terms that intercept a request before any computation or LLM call. Matched
// case-insensitively against the last user message.
var forbiddenTerms = []string{
	"자살",
	"자해",
	"살인",
	"폭탄",
	"suicide",
	"self-harm",
	"kill myself",
	"bomb",
}

var safetyMessages = map[string]string{
	domain.LangKO: "죄송합니다. 해당 주제는 상담해 드릴 수 없습니다. 도움이 필요하시다면 전문 상담 기관(자살예방 상담전화 1393)에 연락해 주세요.",
	domain.LangEN: "I'm sorry, I can't discuss that topic. If you need help, please reach out to a professional support line (988 in the US).",
}

// CheckSafety scans the last user message for forbidden terms. A hit returns
// the canned localized message to stream instead of calling the backend.
func CheckSafety(messages []domain.ChatMessage, lang string) (intercepted bool, message string) {
	last := lastUserMessage(messages)
	if last == "" {
		return false, ""
	}

	lowered := strings.ToLower(last)
	for _, term := range forbiddenTerms {
		if strings.Contains(lowered, term) {
			msg, ok := safetyMessages[lang]
			if !ok {
				msg = safetyMessages[domain.LangKO]
			}
			return true, msg
		}
	}
	return false, ""
}

func lastUserMessage(messages []domain.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
