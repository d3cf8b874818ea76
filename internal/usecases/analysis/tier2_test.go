package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func TestGenerateDaeunSyncEmptyList(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	result := GenerateDaeunSync(testLogger(), &domain.SajuData{}, nil, 30, now, domain.LangKO)
	assert.Equal(t, "", result.Section)
	assert.Empty(t, result.Transitions)

	result = GenerateDaeunSync(testLogger(), nil, nil, 30, now, domain.LangEN)
	assert.Equal(t, "", result.Section)
}

func TestGenerateDaeunSyncCurrentTransitionMarker(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saju := &domain.SajuData{
		DayMaster: &domain.DayMaster{Stem: "甲", Branch: "子"},
		Unse: &domain.LuckCycles{
			Daeun: []domain.DaeunCycle{
				{StartAge: 20, Stem: "丙", Branch: "寅"},
				{StartAge: 30, Stem: "丁", Branch: "卯"},
				{StartAge: 40, Stem: "戊", Branch: "辰"},
			},
		},
	}

	result := GenerateDaeunSync(testLogger(), saju, nil, 30, now, domain.LangKO)
	require.NotEmpty(t, result.Section)
	assert.Contains(t, result.Section, "👉")

	var current *Transition
	for i := range result.Transitions {
		if result.Transitions[i].IsCurrent {
			current = &result.Transitions[i]
		}
	}
	require.NotNil(t, current)
	assert.Equal(t, 30, current.Age)
}

func TestGenerateDaeunSyncCaps(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	daeun := make([]domain.DaeunCycle, 0, 8)
	for age := 0; age < 80; age += 10 {
		daeun = append(daeun, domain.DaeunCycle{StartAge: age, Stem: "甲", Branch: "子"})
	}
	saju := &domain.SajuData{
		DayMaster: &domain.DayMaster{Stem: "甲", Branch: "子"},
		Unse:      &domain.LuckCycles{Daeun: daeun},
	}

	result := GenerateDaeunSync(testLogger(), saju, nil, 35, now, domain.LangEN)
	assert.LessOrEqual(t, len(result.Transitions), maxTransitions)
	for _, tr := range result.Transitions {
		assert.LessOrEqual(t, len(tr.Themes), maxThemesPerTransition)
	}
	assert.LessOrEqual(t, len(result.PeakYears), maxPeakYears)
	assert.LessOrEqual(t, len(result.ChallengeYears), maxChallengeYears)
}

func TestGenerateDaeunSyncConfidenceBounds(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	transits := make([]domain.TransitAspect, 40)
	saju := &domain.SajuData{
		Unse: &domain.LuckCycles{
			Daeun: []domain.DaeunCycle{{StartAge: 20, Stem: "甲", Branch: "子"}},
		},
	}

	result := GenerateDaeunSync(testLogger(), saju, transits, 25, now, domain.LangEN)
	assert.LessOrEqual(t, result.Confidence, 100)
	assert.GreaterOrEqual(t, result.Confidence, 0)
}

func TestGenerateDaeunSyncPeakAndChallengeYears(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saju := &domain.SajuData{
		Advanced: &domain.ElementBalance{
			Favorable:   []string{"wood"},
			Unfavorable: []string{"metal"},
		},
		Unse: &domain.LuckCycles{
			Daeun: []domain.DaeunCycle{{StartAge: 20, Stem: "甲", Branch: "子"}},
			Annual: []domain.AnnualLuck{
				{Year: 2024, Stem: "甲", Branch: "辰"}, // wood: peak
				{Year: 2025, Stem: "庚", Branch: "巳"}, // metal: challenge
				{Year: 2020, Stem: "甲", Branch: "子"}, // past year: ignored
			},
		},
	}

	result := GenerateDaeunSync(testLogger(), saju, nil, 25, now, domain.LangKO)
	assert.Equal(t, []int{2024}, result.PeakYears)
	assert.Equal(t, []int{2025}, result.ChallengeYears)
}
