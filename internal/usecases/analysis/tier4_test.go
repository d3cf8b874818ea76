package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func conjunction(star string) domain.FixedStarConjunction {
	return domain.FixedStarConjunction{
		Star:       domain.FixedStar{Name: star},
		NatalPoint: "Sun",
		Orb:        0.5,
	}
}

func TestGenerateDeepAnalysisEmptyInput(t *testing.T) {
	result := GenerateDeepAnalysis(testLogger(), nil, nil, nil, domain.LangKO)
	assert.Equal(t, "", result.Section)
	assert.False(t, result.HasRoyalStars)
}

func TestRoyalStarFlag(t *testing.T) {
	for _, star := range []string{"Regulus", "Aldebaran", "Antares", "Fomalhaut"} {
		result := GenerateDeepAnalysis(testLogger(), nil, nil, []domain.FixedStarConjunction{conjunction(star)}, domain.LangEN)
		assert.True(t, result.HasRoyalStars, "expected royal flag for %s", star)
		assert.Contains(t, result.Section, "Royal star")
	}

	result := GenerateDeepAnalysis(testLogger(), nil, nil, []domain.FixedStarConjunction{conjunction("Sirius")}, domain.LangEN)
	assert.False(t, result.HasRoyalStars)
	assert.NotContains(t, result.Section, "Royal star")
}

func TestRoyalStarFlagBeyondRenderedSlice(t *testing.T) {
	// The rendered list caps at five entries, but the flag must cover all.
	stars := []domain.FixedStarConjunction{
		conjunction("Sirius"),
		conjunction("Vega"),
		conjunction("Spica"),
		conjunction("Algol"),
		conjunction("Procyon"),
		conjunction("Regulus"),
	}

	result := GenerateDeepAnalysis(testLogger(), nil, nil, stars, domain.LangEN)
	assert.True(t, result.HasRoyalStars)
	assert.NotContains(t, result.Section, "Regulus ↔")
}

func TestGenerateDeepAnalysisHarmonic(t *testing.T) {
	harmonic := &domain.HarmonicAnalysis{
		Number:    7,
		Strength:  62,
		Strongest: "H7",
		Patterns:  []string{"septile chain"},
	}

	result := GenerateDeepAnalysis(testLogger(), harmonic, nil, nil, domain.LangEN)
	require.NotEmpty(t, result.Section)
	assert.Contains(t, result.Section, "Harmonic 7")
	assert.Contains(t, result.Section, "septile chain")
}

func TestGenerateDeepAnalysisEclipses(t *testing.T) {
	eclipses := &domain.EclipseAnalysis{
		Upcoming: []domain.EclipseEvent{
			{Type: "solar", Date: "2024-04-08", Sign: "Aries", Degree: 19.2},
			{Type: "lunar", Date: "2024-09-18", Sign: "Pisces", Degree: 25.7},
			{Type: "solar", Date: "2024-10-02", Sign: "Libra", Degree: 10.0},
			{Type: "lunar", Date: "2025-03-14", Sign: "Virgo", Degree: 23.9},
		},
		Impacts: []domain.EclipseImpact{
			{NatalPoint: "Sun", AspectType: "conjunction", Orb: 1.2, Interpretation: domain.LocalizedText{En: "identity reset"}},
		},
		Sensitive: true,
	}

	result := GenerateDeepAnalysis(testLogger(), nil, eclipses, nil, domain.LangEN)
	assert.Contains(t, result.Section, "2024-04-08")
	// Only three upcoming eclipses render.
	assert.NotContains(t, result.Section, "2025-03-14")
	assert.Contains(t, result.Section, "identity reset")
	assert.Contains(t, result.Section, "eclipse-sensitive")
}
