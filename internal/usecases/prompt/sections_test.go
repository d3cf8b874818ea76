package prompt

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sajuFixture() *domain.SajuData {
	return &domain.SajuData{
		DayMaster: &domain.DayMaster{Stem: "甲", Branch: "子", Element: "wood"},
		Pillars: &domain.Pillars{
			Day: &domain.Pillar{Stem: "甲", Branch: "子"},
		},
	}
}

var sectionNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestBuildDailyPrecisionSectionThemeGating(t *testing.T) {
	section := BuildDailyPrecisionSection(testLogger(), sajuFixture(), domain.ThemeToday, domain.LangKO, sectionNow)
	require.NotEmpty(t, section)
	lines := strings.Split(section, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[1], "오늘의 정밀 분석")

	// Gated off for an unrelated theme.
	assert.Equal(t, "", BuildDailyPrecisionSection(testLogger(), sajuFixture(), domain.ThemeLove, domain.LangKO, sectionNow))

	// chat theme is also in the gate set.
	assert.NotEmpty(t, BuildDailyPrecisionSection(testLogger(), sajuFixture(), domain.ThemeChat, domain.LangKO, sectionNow))
}

func TestBuildDailyPrecisionSectionRequiresDayMaster(t *testing.T) {
	assert.Equal(t, "", BuildDailyPrecisionSection(testLogger(), &domain.SajuData{}, domain.ThemeToday, domain.LangKO, sectionNow))
	assert.Equal(t, "", BuildDailyPrecisionSection(testLogger(), nil, domain.ThemeToday, domain.LangKO, sectionNow))
}

func TestBuildAdvancedTimingSectionGating(t *testing.T) {
	saju := sajuFixture()
	saju.Unse = &domain.LuckCycles{
		Daeun:  []domain.DaeunCycle{{StartAge: 25, Stem: "丙", Branch: "寅"}},
		Annual: []domain.AnnualLuck{{Year: 2024, Stem: "甲", Branch: "辰"}},
	}

	section := BuildAdvancedTimingSection(testLogger(), saju, domain.ThemeYear, domain.LangKO, 30, sectionNow)
	assert.Contains(t, section, "현재 대운")
	assert.Contains(t, section, "2024년 세운")

	assert.Equal(t, "", BuildAdvancedTimingSection(testLogger(), saju, domain.ThemeWeek, domain.LangKO, 30, sectionNow))
}

func TestBuildLifePredictionSectionGating(t *testing.T) {
	saju := sajuFixture()
	saju.Unse = &domain.LuckCycles{
		Daeun: []domain.DaeunCycle{
			{StartAge: 20, Stem: "丙", Branch: "寅"},
			{StartAge: 30, Stem: "丁", Branch: "卯"},
		},
	}

	section := BuildLifePredictionSection(testLogger(), saju, domain.ThemeLife, domain.LangEN, 32)
	assert.Contains(t, section, "Decade cycle map")
	assert.Contains(t, section, "👉 age 30-39")

	assert.Equal(t, "", BuildLifePredictionSection(testLogger(), saju, domain.ThemeToday, domain.LangEN, 32))
}

func TestBuildWeeklySection(t *testing.T) {
	section := BuildWeeklySection(testLogger(), sajuFixture(), domain.ThemeWeek, domain.LangEN, sectionNow)
	assert.Contains(t, section, "Day pillars this week")
	assert.Contains(t, section, "2024-01-01")
	assert.Contains(t, section, "2024-01-07")

	assert.Equal(t, "", BuildWeeklySection(testLogger(), sajuFixture(), domain.ThemeChat, domain.LangEN, sectionNow))
}
