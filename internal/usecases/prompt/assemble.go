package prompt

import (
	"sort"
	"strings"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Question labels appended above the user's current message.
var questionLabels = map[string]string{
	domain.LangKO: "[현재 질문]",
	domain.LangEN: "[Current question]",
}

// AssembleFinalPrompt joins system prompt, base data, memory, the priority-
// sorted sections, the conversation history and the current question into
// one prompt string. Pure and deterministic: identical inputs yield
// byte-identical output.
func AssembleFinalPrompt(systemPrompt, baseData, memory string, sections []domain.PromptSection, history []domain.ChatMessage, question, lang string) string {
	kept := make([]domain.PromptSection, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s.Content) != "" {
			kept = append(kept, s)
		}
	}
	// Stable sort: equal priorities keep their original order.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Priority > kept[j].Priority
	})

	parts := make([]string, 0, len(kept)+5)
	for _, block := range []string{systemPrompt, baseData, memory} {
		if strings.TrimSpace(block) != "" {
			parts = append(parts, block)
		}
	}
	for _, s := range kept {
		parts = append(parts, s.Content)
	}

	if rendered := RenderHistory(history); rendered != "" {
		parts = append(parts, rendered)
	}

	label, ok := questionLabels[lang]
	if !ok {
		label = questionLabels[domain.LangKO]
	}
	parts = append(parts, label+"\n"+question)

	return strings.Join(parts, "\n\n")
}
