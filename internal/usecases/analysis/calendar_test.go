package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func TestDayPillarAnchor(t *testing.T) {
	anchor := time.Date(1984, 2, 2, 0, 0, 0, 0, time.UTC)
	p := DayPillar(anchor)

	assert.Equal(t, "甲", p.Stem)
	assert.Equal(t, "子", p.Branch)
}

func TestDayPillarDeterministic(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	first := DayPillar(date)
	second := DayPillar(date)
	assert.Equal(t, first, second)

	// Time of day must not change the pillar.
	evening := time.Date(2024, 6, 15, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, first, DayPillar(evening))
}

func TestDayPillarCycles(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	p := DayPillar(start)

	// The sexagenary cycle repeats every 60 days exactly.
	assert.Equal(t, p, DayPillar(start.AddDate(0, 0, 60)))
	assert.NotEqual(t, p, DayPillar(start.AddDate(0, 0, 1)))
}

func TestGongmangBranches(t *testing.T) {
	// 甲子 opens the first xun; its void branches are 戌 and 亥.
	void := GongmangBranches(domain.Pillar{Stem: "甲", Branch: "子"})
	assert.Equal(t, [2]string{"戌", "亥"}, void)

	// 甲戌 opens the xun whose void branches are 申 and 酉.
	void = GongmangBranches(domain.Pillar{Stem: "甲", Branch: "戌"})
	assert.Equal(t, [2]string{"申", "酉"}, void)
}

func TestIsGongmang(t *testing.T) {
	day := domain.Pillar{Stem: "甲", Branch: "子"}

	assert.True(t, IsGongmang(day, "戌"))
	assert.True(t, IsGongmang(day, "亥"))
	assert.False(t, IsGongmang(day, "子"))
	assert.False(t, IsGongmang(day, "午"))
}

func TestBranchRelations(t *testing.T) {
	assert.True(t, InTrine("申", "子"))
	assert.True(t, InTrine("子", "辰"))
	assert.False(t, InTrine("子", "午"))

	assert.True(t, InHarmony("子", "丑"))
	assert.True(t, InHarmony("丑", "子"))
	assert.False(t, InHarmony("子", "亥"))

	assert.True(t, InClash("子", "午"))
	assert.True(t, InClash("卯", "酉"))
	assert.False(t, InClash("子", "丑"))
}

func TestActiveDayShinsal(t *testing.T) {
	// 甲 day stem: nobleman branches are 丑 and 未.
	active := ActiveDayShinsal("甲", "子", "丑", domain.LangKO)
	assert.Contains(t, active, "천을귀인 (귀인의 도움)")

	// 子 belongs to the 申子辰 group whose travel star is 寅.
	active = ActiveDayShinsal("甲", "子", "寅", domain.LangKO)
	assert.Contains(t, active, "역마 (이동·변화)")

	// 午 clashes with 子.
	active = ActiveDayShinsal("甲", "子", "午", domain.LangKO)
	assert.Contains(t, active, "일지충 (충돌 주의)")

	// A quiet branch activates nothing.
	active = ActiveDayShinsal("甲", "子", "亥", domain.LangKO)
	assert.Empty(t, active)
}
