package analysis

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Tier4Result is the deep analysis: age harmonics, eclipse exposure and
// fixed-star conjunctions. Each sub-block degrades independently.
type Tier4Result struct {
	Section       string
	Harmonic      *domain.HarmonicAnalysis
	Eclipses      *domain.EclipseAnalysis
	StarHits      []domain.FixedStarConjunction
	HasRoyalStars bool
}

const (
	maxEclipsesShown       = 3
	maxEclipseImpactsShown = 3
	maxStarHitsShown       = 5
)

// The four royal stars. A conjunction with any of them flips HasRoyalStars.
var royalStars = map[string]bool{
	"Regulus":   true,
	"Aldebaran": true,
	"Antares":   true,
	"Fomalhaut": true,
}

// GenerateDeepAnalysis computes Tier 4. The three sub-sections are guarded
// separately so a failure in one leaves the others intact.
func GenerateDeepAnalysis(log *slog.Logger, harmonic *domain.HarmonicAnalysis, eclipses *domain.EclipseAnalysis, stars []domain.FixedStarConjunction, lang string) Tier4Result {
	result := Tier4Result{
		Harmonic: harmonic,
		Eclipses: eclipses,
		StarHits: stars,
	}

	harmonicPart := GuardSection(log, "deep_harmonics", func() (string, error) {
		return renderHarmonic(harmonic, lang), nil
	})
	eclipsePart := GuardSection(log, "deep_eclipses", func() (string, error) {
		return renderEclipses(eclipses, lang), nil
	})
	starsPart := GuardSection(log, "deep_fixed_stars", func() (string, error) {
		part, royal := renderFixedStars(stars, lang)
		result.HasRoyalStars = royal
		return part, nil
	})

	parts := make([]string, 0, 3)
	for _, p := range []string{harmonicPart, eclipsePart, starsPart} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return result
	}

	var b strings.Builder
	b.WriteString(Banner + "\n")
	b.WriteString(tr(lang, "tier4.title") + "\n")
	b.WriteString(Banner + "\n")
	b.WriteString(strings.Join(parts, ""))
	result.Section = b.String()

	return result
}

func renderHarmonic(h *domain.HarmonicAnalysis, lang string) string {
	if h == nil || h.Number <= 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf(tr(lang, "tier4.harmonic"), h.Number, h.Strength) + "\n")
	if h.Strongest != "" {
		b.WriteString(fmt.Sprintf(tr(lang, "tier4.harmonic.top"), h.Strongest) + "\n")
	}
	if len(h.Patterns) > 0 {
		b.WriteString(fmt.Sprintf(tr(lang, "tier4.harmonic.pat"), strings.Join(h.Patterns, ", ")) + "\n")
	}
	return b.String()
}

func renderEclipses(e *domain.EclipseAnalysis, lang string) string {
	if e == nil || (len(e.Upcoming) == 0 && len(e.Impacts) == 0) {
		return ""
	}
	var b strings.Builder

	if len(e.Upcoming) > 0 {
		b.WriteString(tr(lang, "tier4.eclipse.head") + "\n")
		shown := e.Upcoming
		if len(shown) > maxEclipsesShown {
			shown = shown[:maxEclipsesShown]
		}
		for _, ev := range shown {
			b.WriteString(fmt.Sprintf(tr(lang, "tier4.eclipse.item"), ev.Date, ev.Type, ev.Sign, ev.Degree) + "\n")
		}
	}

	impacts := e.Impacts
	if len(impacts) > maxEclipseImpactsShown {
		impacts = impacts[:maxEclipseImpactsShown]
	}
	for _, imp := range impacts {
		b.WriteString(fmt.Sprintf(tr(lang, "tier4.eclipse.impact"),
			imp.NatalPoint, aspectName(lang, imp.AspectType), imp.Orb, imp.Interpretation.In(lang)) + "\n")
	}

	if e.Sensitive {
		b.WriteString(tr(lang, "tier4.eclipse.sens") + "\n")
	}
	return b.String()
}

func renderFixedStars(stars []domain.FixedStarConjunction, lang string) (string, bool) {
	if len(stars) == 0 {
		return "", false
	}
	var b strings.Builder
	royal := false

	shown := stars
	if len(shown) > maxStarHitsShown {
		shown = shown[:maxStarHitsShown]
	}
	for _, hit := range shown {
		b.WriteString(fmt.Sprintf(tr(lang, "tier4.star"),
			hit.Star.Name, hit.NatalPoint, hit.Orb, hit.Interpretation.In(lang)) + "\n")
	}
	// The royal check covers the full list, not only the rendered slice.
	for _, hit := range stars {
		if royalStars[hit.Star.Name] {
			royal = true
			break
		}
	}
	if royal {
		b.WriteString(tr(lang, "tier4.star.royal") + "\n")
	}
	return b.String(), royal
}
