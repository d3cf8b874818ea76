package prompt

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/analysis"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
)

// Theme gates per section builder. A builder whose theme set does not contain
// the request theme returns "" so assembly filters it out.
var (
	dailyThemes    = themeSet(domain.ThemeToday, domain.ThemeChat)
	timingThemes   = themeSet(domain.ThemeYear, domain.ThemeMonth, domain.ThemeToday, domain.ThemeLife, domain.ThemeChat)
	advancedThemes = themeSet(domain.ThemeYear, domain.ThemeMonth, domain.ThemeToday, domain.ThemeLife, domain.ThemeChat)
	lifeThemes     = themeSet(domain.ThemeLife, domain.ThemeYear, domain.ThemeDecade, domain.ThemeCareer)
	monthlyThemes  = themeSet(domain.ThemeMonth)
	weeklyThemes   = themeSet(domain.ThemeWeek)
)

func themeSet(themes ...string) map[string]bool {
	out := make(map[string]bool, len(themes))
	for _, t := range themes {
		out[t] = true
	}
	return out
}

// BuildDailyPrecisionSection adapts the Tier 1 generator. Active for the
// today and chat themes only, and only when a day master is present.
func BuildDailyPrecisionSection(log *slog.Logger, saju *domain.SajuData, theme, lang string, now time.Time) string {
	if !dailyThemes[theme] || !saju.HasDayMaster() {
		return ""
	}
	return analysis.GenerateDailyPrecision(log, saju, now, lang).Section
}

// BuildAdvancedTimingSection renders the current decade cycle and the annual
// pillar for timing-sensitive themes.
func BuildAdvancedTimingSection(log *slog.Logger, saju *domain.SajuData, theme, lang string, age int, now time.Time) string {
	if !timingThemes[theme] || !saju.HasDayMaster() {
		return ""
	}
	return analysis.GuardSection(log, "advanced_timing", func() (string, error) {
		var b strings.Builder

		if current := chart.ExtractCurrentDaeun(saju, age); current != nil {
			stem := current.Stem
			if stem == "" {
				stem = domain.DefaultStem
			}
			branch := current.Branch
			if branch == "" {
				branch = domain.DefaultBranch
			}
			if lang == domain.LangEN {
				b.WriteString(fmt.Sprintf("⏳ Current decade cycle: %s%s from age %d\n", stem, branch, current.StartAge))
			} else {
				b.WriteString(fmt.Sprintf("⏳ 현재 대운: %d세부터 %s%s 대운\n", current.StartAge, stem, branch))
			}
		}

		if saju.Unse != nil {
			for _, a := range saju.Unse.Annual {
				if a.Year == now.Year() {
					if lang == domain.LangEN {
						b.WriteString(fmt.Sprintf("📆 %d annual pillar: %s%s\n", a.Year, a.Stem, a.Branch))
					} else {
						b.WriteString(fmt.Sprintf("📆 %d년 세운: %s%s\n", a.Year, a.Stem, a.Branch))
					}
					break
				}
			}
		}

		return b.String(), nil
	})
}

// BuildDaeunSyncSection adapts the Tier 2 generator for timing themes.
func BuildDaeunSyncSection(log *slog.Logger, saju *domain.SajuData, transits []domain.TransitAspect, theme, lang string, age int, now time.Time) string {
	if !timingThemes[theme] || !saju.HasDayMaster() {
		return ""
	}
	return analysis.GenerateDaeunSync(log, saju, transits, age, now, lang).Section
}

// BuildAdvancedAstroSection adapts the Tier 3 generator.
func BuildAdvancedAstroSection(log *slog.Logger, astro *domain.AstroData, patterns []domain.RarePatternMatch, theme, lang string) string {
	if !advancedThemes[theme] || !astro.HasSun() {
		return ""
	}
	return analysis.GenerateAdvancedAstro(log, astro, patterns, lang).Section
}

// BuildDeepAnalysisSection adapts the Tier 4 generator. Harmonics need both a
// chart and a known age; the caller passes nil inputs when either is missing.
func BuildDeepAnalysisSection(log *slog.Logger, harmonic *domain.HarmonicAnalysis, eclipses *domain.EclipseAnalysis, stars []domain.FixedStarConjunction, theme, lang string) string {
	if !advancedThemes[theme] {
		return ""
	}
	return analysis.GenerateDeepAnalysis(log, harmonic, eclipses, stars, lang).Section
}

// BuildLifePredictionSection renders the multi-year outlook for long-horizon
// themes from the full decade-cycle list.
func BuildLifePredictionSection(log *slog.Logger, saju *domain.SajuData, theme, lang string, age int) string {
	if !lifeThemes[theme] || !saju.HasDayMaster() {
		return ""
	}
	return analysis.GuardSection(log, "life_prediction", func() (string, error) {
		daeun := chart.DaeunList(saju)
		if len(daeun) == 0 {
			return "", nil
		}

		var b strings.Builder
		if lang == domain.LangEN {
			b.WriteString("🗺️ Decade cycle map:\n")
		} else {
			b.WriteString("🗺️ 대운 지도:\n")
		}
		for _, d := range daeun {
			marker := "  "
			if age >= d.StartAge && age < d.StartAge+10 {
				marker = "👉"
			}
			stem := d.Stem
			if stem == "" {
				stem = domain.DefaultStem
			}
			branch := d.Branch
			if branch == "" {
				branch = domain.DefaultBranch
			}
			if lang == domain.LangEN {
				b.WriteString(fmt.Sprintf("%s age %d-%d: %s%s\n", marker, d.StartAge, d.StartAge+9, stem, branch))
			} else {
				b.WriteString(fmt.Sprintf("%s %d-%d세: %s%s\n", marker, d.StartAge, d.StartAge+9, stem, branch))
			}
		}
		return b.String(), nil
	})
}

// BuildMonthlySection renders this month's pillar when present.
func BuildMonthlySection(log *slog.Logger, saju *domain.SajuData, theme, lang string, now time.Time) string {
	if !monthlyThemes[theme] || !saju.HasDayMaster() {
		return ""
	}
	return analysis.GuardSection(log, "monthly", func() (string, error) {
		if saju.Unse == nil || len(saju.Unse.Monthly) == 0 {
			return "", nil
		}
		idx := int(now.Month()) - 1
		if idx >= len(saju.Unse.Monthly) {
			return "", nil
		}
		p := saju.Unse.Monthly[idx]
		if lang == domain.LangEN {
			return fmt.Sprintf("📅 Month pillar: %s%s\n", p.Stem, p.Branch), nil
		}
		return fmt.Sprintf("📅 이번 달 월운: %s%s\n", p.Stem, p.Branch), nil
	})
}

// BuildWeeklySection renders the day pillars of the coming week.
func BuildWeeklySection(log *slog.Logger, saju *domain.SajuData, theme, lang string, now time.Time) string {
	if !weeklyThemes[theme] || !saju.HasDayMaster() {
		return ""
	}
	return analysis.GuardSection(log, "weekly", func() (string, error) {
		var b strings.Builder
		if lang == domain.LangEN {
			b.WriteString("🗓️ Day pillars this week:\n")
		} else {
			b.WriteString("🗓️ 이번 주 일진:\n")
		}
		for i := 0; i < 7; i++ {
			day := now.AddDate(0, 0, i)
			p := analysis.DayPillar(day)
			b.WriteString(fmt.Sprintf("  %s: %s%s\n", day.Format("2006-01-02"), p.Stem, p.Branch))
		}
		return b.String(), nil
	})
}
