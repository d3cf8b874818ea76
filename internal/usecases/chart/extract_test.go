package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func TestPillarOrDefault(t *testing.T) {
	p := PillarOrDefault(nil)
	assert.Equal(t, domain.Pillar{Stem: "甲", Branch: "子"}, p)

	p = PillarOrDefault(&domain.Pillar{Stem: "丙"})
	assert.Equal(t, domain.Pillar{Stem: "丙", Branch: "子"}, p)

	p = PillarOrDefault(&domain.Pillar{Stem: "丙", Branch: "午"})
	assert.Equal(t, domain.Pillar{Stem: "丙", Branch: "午"}, p)
}

func TestDayMasterOrDefault(t *testing.T) {
	dm := DayMasterOrDefault(nil)
	assert.Equal(t, "甲", dm.Stem)
	assert.Equal(t, "子", dm.Branch)
	assert.Equal(t, "wood", dm.Element)

	dm = DayMasterOrDefault(&domain.SajuData{
		DayMaster: &domain.DayMaster{Stem: "庚", Branch: "申"},
	})
	assert.Equal(t, "庚", dm.Stem)
	assert.Equal(t, "metal", dm.Element)
}

func TestExtractCurrentDaeun(t *testing.T) {
	saju := &domain.SajuData{
		Unse: &domain.LuckCycles{
			Daeun: []domain.DaeunCycle{
				{StartAge: 5, Stem: "乙", Branch: "丑"},
				{StartAge: 15, Stem: "丙", Branch: "寅"},
				{StartAge: 25, Stem: "丁", Branch: "卯"},
			},
		},
	}

	cycle := ExtractCurrentDaeun(saju, 20)
	require.NotNil(t, cycle)
	assert.Equal(t, 15, cycle.StartAge)

	// Window is half-open: age 25 belongs to the next cycle.
	cycle = ExtractCurrentDaeun(saju, 25)
	require.NotNil(t, cycle)
	assert.Equal(t, 25, cycle.StartAge)

	assert.Nil(t, ExtractCurrentDaeun(saju, 40))
	assert.Nil(t, ExtractCurrentDaeun(saju, 2))
	assert.Nil(t, ExtractCurrentDaeun(nil, 20))
	assert.Nil(t, ExtractCurrentDaeun(&domain.SajuData{}, 20))
}

func TestExtractCurrentDaeunOverlappingFirstMatchWins(t *testing.T) {
	saju := &domain.SajuData{
		Unse: &domain.LuckCycles{
			Daeun: []domain.DaeunCycle{
				{StartAge: 20, Stem: "甲", Branch: "子"},
				{StartAge: 25, Stem: "乙", Branch: "丑"},
			},
		},
	}

	// Age 27 satisfies both windows; list order decides.
	cycle := ExtractCurrentDaeun(saju, 27)
	require.NotNil(t, cycle)
	assert.Equal(t, 20, cycle.StartAge)
}

func TestFourPillarsDefaults(t *testing.T) {
	pillars := FourPillars(nil)
	for _, p := range pillars {
		assert.Equal(t, "甲", p.Stem)
		assert.Equal(t, "子", p.Branch)
	}

	pillars = FourPillars(&domain.SajuData{
		Pillars: &domain.Pillars{
			Day: &domain.Pillar{Stem: "壬", Branch: "辰"},
		},
	})
	assert.Equal(t, "壬", pillars[2].Stem)
	assert.Equal(t, "甲", pillars[0].Stem)
}
