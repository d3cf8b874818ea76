package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func TestGenerateAdvancedAstroEmptyInput(t *testing.T) {
	result := GenerateAdvancedAstro(testLogger(), nil, nil, domain.LangKO)
	// The title block renders even without chart data.
	assert.NotEmpty(t, result.Section)
	assert.Empty(t, result.MoonPhase)
	assert.Empty(t, result.Retrogrades)
}

func TestMoonPhaseFromLongitudes(t *testing.T) {
	cases := []struct {
		name     string
		sun      float64
		moon     float64
		expected string
	}{
		{"new moon", 10, 10, "New Moon"},
		{"first quarter", 0, 100, "First Quarter"},
		{"full moon", 0, 180, "Full Moon"},
		{"last quarter", 0, 280, "Last Quarter"},
		{"wraparound", 350, 10, "New Moon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			astro := &domain.AstroData{
				Sun:  &domain.PlanetPlacement{Name: "Sun", Longitude: tc.sun},
				Moon: &domain.PlanetPlacement{Name: "Moon", Longitude: tc.moon},
			}
			phase, ok := moonPhaseName(astro, domain.LangEN)
			require.True(t, ok)
			assert.Equal(t, tc.expected, phase)
		})
	}
}

func TestGenerateAdvancedAstroRetrogradeAdvisories(t *testing.T) {
	astro := &domain.AstroData{
		Sun:     &domain.PlanetPlacement{Name: "Sun", Longitude: 0},
		Moon:    &domain.PlanetPlacement{Name: "Moon", Longitude: 90},
		Mercury: &domain.PlanetPlacement{Name: "Mercury", Retrograde: true},
		Venus:   &domain.PlanetPlacement{Name: "Venus", Retrograde: true},
		Mars:    &domain.PlanetPlacement{Name: "Mars"},
	}

	result := GenerateAdvancedAstro(testLogger(), astro, nil, domain.LangEN)
	assert.Equal(t, []string{"Mercury", "Venus"}, result.Retrogrades)
	assert.Contains(t, result.Section, "Mercury retrograde")
	assert.Contains(t, result.Section, "Venus retrograde")
}

func TestGenerateAdvancedAstroVoidOfCourse(t *testing.T) {
	voc := true
	astro := &domain.AstroData{VoidOfCourse: &voc}

	result := GenerateAdvancedAstro(testLogger(), astro, nil, domain.LangKO)
	assert.True(t, result.VoidOfCourse)
	assert.Contains(t, result.Section, "보이드 오브 코스")
}

func TestGenerateAdvancedAstroRarePatterns(t *testing.T) {
	patterns := []domain.RarePatternMatch{
		{Name: domain.LocalizedText{Ko: "괴강격", En: "Goegang"}, Rarity: domain.RarityLegendary, Score: 90},
		{Name: domain.LocalizedText{Ko: "양인격", En: "Yangin"}, Rarity: domain.RarityRare, Score: 70},
	}

	result := GenerateAdvancedAstro(testLogger(), nil, patterns, domain.LangEN)
	assert.Len(t, result.RarePatterns, 2)
	assert.Contains(t, result.Section, "Goegang")
	assert.Contains(t, result.Section, "Legendary")
	// Average of 90 and 70.
	assert.Contains(t, result.Section, "80.0")
}
