package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func TestAssembleFinalPromptDeterministic(t *testing.T) {
	sections := []domain.PromptSection{
		{Name: "b", Content: "section b", Priority: 50},
		{Name: "a", Content: "section a", Priority: 90},
	}
	history := []domain.ChatMessage{{Role: domain.RoleUser, Content: "hi"}}

	first := AssembleFinalPrompt("system", "base", "memory", sections, history, "what now?", domain.LangKO)
	second := AssembleFinalPrompt("system", "base", "memory", sections, history, "what now?", domain.LangKO)
	assert.Equal(t, first, second)
}

func TestAssembleFinalPromptFiltersEmptySections(t *testing.T) {
	sections := []domain.PromptSection{
		{Name: "empty", Content: "", Priority: 100},
		{Name: "blank", Content: "   \n\t", Priority: 95},
		{Name: "real", Content: "real content", Priority: 50},
	}

	out := AssembleFinalPrompt("sys", "", "", sections, nil, "q", domain.LangEN)
	assert.Contains(t, out, "real content")
	assert.NotContains(t, out, "\n\n\n\n")
}

func TestAssembleFinalPromptPriorityOrder(t *testing.T) {
	sections := []domain.PromptSection{
		{Name: "weekly", Content: "WEEKLY", Priority: 50},
		{Name: "daily", Content: "DAILY", Priority: 90},
		{Name: "sync", Content: "SYNC", Priority: 80},
	}

	out := AssembleFinalPrompt("sys", "", "", sections, nil, "q", domain.LangEN)

	daily := strings.Index(out, "DAILY")
	sync := strings.Index(out, "SYNC")
	weekly := strings.Index(out, "WEEKLY")
	require.True(t, daily >= 0 && sync >= 0 && weekly >= 0)
	assert.Less(t, daily, sync)
	assert.Less(t, sync, weekly)
}

func TestAssembleFinalPromptStableTies(t *testing.T) {
	sections := []domain.PromptSection{
		{Name: "first", Content: "TIE-FIRST", Priority: 70},
		{Name: "second", Content: "TIE-SECOND", Priority: 70},
	}

	out := AssembleFinalPrompt("sys", "", "", sections, nil, "q", domain.LangEN)
	assert.Less(t, strings.Index(out, "TIE-FIRST"), strings.Index(out, "TIE-SECOND"))
}

func TestAssembleFinalPromptLayout(t *testing.T) {
	sections := []domain.PromptSection{{Name: "s", Content: "SECTION", Priority: 60}}
	history := []domain.ChatMessage{{Role: domain.RoleUser, Content: "earlier question"}}

	out := AssembleFinalPrompt("SYSTEM", "BASE", "MEMORY", sections, history, "current question", domain.LangKO)

	// system < base < memory < sections < history < question label.
	order := []string{"SYSTEM", "BASE", "MEMORY", "SECTION", "user: earlier question", "[현재 질문]", "current question"}
	last := -1
	for _, token := range order {
		idx := strings.Index(out, token)
		require.GreaterOrEqual(t, idx, 0, "missing %q", token)
		assert.Greater(t, idx, last, "%q out of order", token)
		last = idx
	}
	assert.True(t, strings.HasSuffix(out, "current question"))
}

func TestAssembleFinalPromptEnglishLabel(t *testing.T) {
	out := AssembleFinalPrompt("", "", "", nil, nil, "hello", domain.LangEN)
	assert.Contains(t, out, "[Current question]")
	assert.NotContains(t, out, "[현재 질문]")
}
