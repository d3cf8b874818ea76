package analysis

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Tier3Result is the advanced astrology analysis: lunar state, retrogrades,
// special chart points and rare saju patterns.
type Tier3Result struct {
	Section       string
	MoonPhase     string
	VoidOfCourse  bool
	Retrogrades   []string
	SpecialPoints []string
	RarePatterns  []domain.RarePatternMatch
}

// GenerateAdvancedAstro computes Tier 3 from the natal chart and the rare
// pattern matches. One outer guard covers the whole section; the helpers
// tolerate nil and missing fields themselves.
func GenerateAdvancedAstro(log *slog.Logger, astro *domain.AstroData, patterns []domain.RarePatternMatch, lang string) Tier3Result {
	result := Tier3Result{}

	result.Section = GuardSection(log, "advanced_astro", func() (string, error) {
		var b strings.Builder
		b.WriteString(Banner + "\n")
		b.WriteString(tr(lang, "tier3.title") + "\n")
		b.WriteString(Banner + "\n")

		if phase, ok := moonPhaseName(astro, lang); ok {
			result.MoonPhase = phase
			b.WriteString(fmt.Sprintf(tr(lang, "tier3.moon"), phase) + "\n")
		}

		if astro != nil && astro.VoidOfCourse != nil && *astro.VoidOfCourse {
			result.VoidOfCourse = true
			b.WriteString(tr(lang, "tier3.voc") + "\n")
		}

		result.Retrogrades = retrogradeNames(astro)
		if len(result.Retrogrades) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier3.retro"), strings.Join(result.Retrogrades, ", ")) + "\n")
			for _, name := range result.Retrogrades {
				switch name {
				case "Mercury":
					b.WriteString(tr(lang, "tier3.retro.merc") + "\n")
				case "Venus":
					b.WriteString(tr(lang, "tier3.retro.venus") + "\n")
				}
			}
		}

		result.SpecialPoints = specialPointNames(astro)
		if len(result.SpecialPoints) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier3.points"), strings.Join(result.SpecialPoints, ", ")) + "\n")
		}

		result.RarePatterns = patterns
		if len(patterns) > 0 {
			avg := averagePatternScore(patterns)
			names := make([]string, 0, len(patterns))
			top := patterns[0]
			for _, p := range patterns {
				names = append(names, p.Name.In(lang))
				if p.Score > top.Score {
					top = p
				}
			}
			b.WriteString(fmt.Sprintf(tr(lang, "tier3.pattern"),
				strings.Join(names, ", "), rarityLabel(top.Rarity, lang), avg) + "\n")
		}

		return b.String(), nil
	})

	return result
}

// moonPhaseName derives the phase from the sun-moon elongation. Eight phases,
// 45 degrees each, starting at the new moon.
func moonPhaseName(astro *domain.AstroData, lang string) (string, bool) {
	if astro == nil || astro.Sun == nil || astro.Moon == nil {
		return "", false
	}
	elongation := math.Mod(astro.Moon.Longitude-astro.Sun.Longitude+360, 360)
	idx := int(elongation/45) % 8
	return moonPhases[idx].In(lang), true
}

// retrogradeNames lists the classical planets currently retrograde, in the
// fixed sun..saturn order.
func retrogradeNames(astro *domain.AstroData) []string {
	var out []string
	for _, p := range astro.Planets() {
		if p.Retrograde {
			out = append(out, p.Name)
		}
	}
	return out
}

// specialPointNames lists which of the optional chart points are present.
func specialPointNames(astro *domain.AstroData) []string {
	if astro == nil {
		return nil
	}
	var out []string
	for _, pt := range []struct {
		name  string
		point *domain.PlanetPlacement
	}{
		{"Chiron", astro.Chiron},
		{"Lilith", astro.Lilith},
		{"Vertex", astro.Vertex},
		{"Part of Fortune", astro.PartOfFortune},
	} {
		if pt.point != nil {
			out = append(out, pt.name)
		}
	}
	return out
}

func averagePatternScore(patterns []domain.RarePatternMatch) float64 {
	if len(patterns) == 0 {
		return 0
	}
	var sum float64
	for _, p := range patterns {
		sum += p.Score
	}
	return sum / float64(len(patterns))
}

// rarityLabel highlights the rarity tier of a pattern match.
func rarityLabel(rarity, lang string) string {
	switch rarity {
	case domain.RarityLegendary:
		return tr(lang, "tier3.legendary")
	case domain.RarityVeryRare:
		return tr(lang, "tier3.very_rare")
	default:
		return tr(lang, "tier3.rare")
	}
}
