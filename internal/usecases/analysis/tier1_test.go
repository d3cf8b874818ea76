package analysis

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

func sajuWithDayMaster(stem, branch string) *domain.SajuData {
	return &domain.SajuData{
		DayMaster: &domain.DayMaster{Stem: stem, Branch: branch},
		Pillars: &domain.Pillars{
			Day: &domain.Pillar{Stem: stem, Branch: branch},
		},
	}
}

// 2024-01-01 is a 壬戌 day: 戌 falls in the 甲子 void pair but not in the
// 甲戌 one, which makes the two cases below mutually exclusive.
var fixedToday = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateDailyPrecisionGongmangDay(t *testing.T) {
	result := GenerateDailyPrecision(testLogger(), sajuWithDayMaster("甲", "子"), fixedToday, domain.LangKO)

	require.NotEmpty(t, result.Section)
	assert.True(t, result.IsGongmangToday)
	assert.Equal(t, "戌", result.TodayPillar.Branch)
	assert.Contains(t, result.Section, "공망(空亡)일입니다")
	assert.NotContains(t, result.Section, "공망일이 아닙니다")
}

func TestGenerateDailyPrecisionRegularDay(t *testing.T) {
	result := GenerateDailyPrecision(testLogger(), sajuWithDayMaster("甲", "戌"), fixedToday, domain.LangKO)

	require.NotEmpty(t, result.Section)
	assert.False(t, result.IsGongmangToday)
	assert.Contains(t, result.Section, "공망일이 아닙니다")
	assert.NotContains(t, result.Section, "공망(空亡)일입니다")
}

func TestGenerateDailyPrecisionEmptyInput(t *testing.T) {
	// Minimal input must not panic; defaults fill in the day master.
	result := GenerateDailyPrecision(testLogger(), &domain.SajuData{}, fixedToday, domain.LangKO)
	assert.NotEmpty(t, result.Section)

	result = GenerateDailyPrecision(testLogger(), nil, fixedToday, domain.LangEN)
	assert.NotEmpty(t, result.Section)
}

func TestGenerateDailyPrecisionLineOrder(t *testing.T) {
	result := GenerateDailyPrecision(testLogger(), sajuWithDayMaster("甲", "子"), fixedToday, domain.LangKO)

	lines := strings.Split(result.Section, "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Equal(t, Banner, lines[0])
	assert.Contains(t, lines[1], "오늘의 정밀 분석")
	assert.Equal(t, Banner, lines[2])
	assert.Contains(t, lines[3], "오늘의 일진")
}

func TestGenerateDailyPrecisionHourCaps(t *testing.T) {
	result := GenerateDailyPrecision(testLogger(), sajuWithDayMaster("丙", "午"), fixedToday, domain.LangEN)

	assert.LessOrEqual(t, len(result.ExcellentHours), maxExcellentHours)
	assert.LessOrEqual(t, len(result.GoodHours), maxGoodHours)
	assert.LessOrEqual(t, len(result.CautionHours), maxCautionHours)
}
