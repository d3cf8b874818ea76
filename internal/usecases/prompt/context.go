package prompt

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
)

// Input is everything one request contributes to prompt context.
type Input struct {
	Profile   domain.BirthProfile
	Theme     string
	Lang      string
	Charts    chart.Data
	Harmonic  *domain.HarmonicAnalysis
	Eclipses  *domain.EclipseAnalysis
	Stars     []domain.FixedStarConjunction
	Patterns  []domain.RarePatternMatch
	Memories  []domain.PersonaMemory
	Summaries []domain.SessionSummary
	UserCtx   string
}

// Context is the flat bag of named text blocks the assembler consumes.
type Context struct {
	BaseData string
	Memory   string
	Sections []domain.PromptSection
}

// ContextBuilder runs every section builder plus the snapshot and memory
// blocks. Builders are individually guarded, so the result always comes back.
type ContextBuilder struct {
	Log *slog.Logger
	Now func() time.Time
}

func NewContextBuilder(log *slog.Logger) *ContextBuilder {
	return &ContextBuilder{Log: log, Now: time.Now}
}

// Build assembles the context bag. Section build order is fixed; assembly
// re-sorts by priority so the order here only breaks priority ties.
func (c *ContextBuilder) Build(in Input) Context {
	now := c.Now()
	age := ageAt(in.Profile.BirthDate, now)

	sections := []domain.PromptSection{
		{
			Name:     "daily_precision",
			Content:  BuildDailyPrecisionSection(c.Log, in.Charts.Saju, in.Theme, in.Lang, now),
			Priority: domain.PriorityDailyPrecision,
		},
		{
			Name:     "advanced_timing",
			Content:  BuildAdvancedTimingSection(c.Log, in.Charts.Saju, in.Theme, in.Lang, age, now),
			Priority: domain.PriorityAdvancedTiming,
		},
		{
			Name:     "daeun_sync",
			Content:  BuildDaeunSyncSection(c.Log, in.Charts.Saju, in.Charts.Transits, in.Theme, in.Lang, age, now),
			Priority: domain.PriorityDaeunSync,
		},
		{
			Name:     "advanced_astro",
			Content:  BuildAdvancedAstroSection(c.Log, in.Charts.Astro, in.Patterns, in.Theme, in.Lang),
			Priority: domain.PriorityAdvancedAstro,
		},
		{
			Name:     "deep_analysis",
			Content:  BuildDeepAnalysisSection(c.Log, in.Harmonic, in.Eclipses, in.Stars, in.Theme, in.Lang),
			Priority: domain.PriorityHarmonics,
		},
		{
			Name:     "life_prediction",
			Content:  BuildLifePredictionSection(c.Log, in.Charts.Saju, in.Theme, in.Lang, age),
			Priority: domain.PriorityLifePrediction,
		},
		{
			Name:     "monthly",
			Content:  BuildMonthlySection(c.Log, in.Charts.Saju, in.Theme, in.Lang, now),
			Priority: domain.PriorityMonthly,
		},
		{
			Name:     "weekly",
			Content:  BuildWeeklySection(c.Log, in.Charts.Saju, in.Theme, in.Lang, now),
			Priority: domain.PriorityWeekly,
		},
	}

	return Context{
		BaseData: BuildSnapshot(in.Profile, in.Charts, in.Lang),
		Memory:   buildMemoryBlock(in.Memories, in.Summaries, in.UserCtx, in.Lang),
		Sections: sections,
	}
}

// ageAt computes completed years from a YYYY-MM-DD birth date. Unparsable
// input yields 0, which downstream treats as "age unknown".
func ageAt(birthDate string, now time.Time) int {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// buildMemoryBlock renders long-term memories and recent session summaries
// into one block. Empty inputs yield "".
func buildMemoryBlock(memories []domain.PersonaMemory, summaries []domain.SessionSummary, userCtx, lang string) string {
	if len(memories) == 0 && len(summaries) == 0 && userCtx == "" {
		return ""
	}

	var b strings.Builder
	if lang == domain.LangEN {
		b.WriteString("[What I remember about you]\n")
	} else {
		b.WriteString("[기억하고 있는 정보]\n")
	}

	for _, m := range memories {
		b.WriteString("- " + m.Kind + ": " + m.Content + "\n")
	}
	for _, s := range summaries {
		b.WriteString("- " + s.Summary + "\n")
	}
	if userCtx != "" {
		b.WriteString("- " + userCtx + "\n")
	}
	return b.String()
}
