package analysis

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
)

// Tier1Result is the daily-precision analysis: today's pillar, void status,
// active shinsal and hour-quality buckets.
type Tier1Result struct {
	Section         string
	TodayPillar     domain.Pillar
	IsGongmangToday bool
	ActiveShinsal   []string
	DominantElement string
	ExcellentHours  []string
	GoodHours       []string
	CautionHours    []string
}

// Caps on list lengths in the rendered section.
const (
	maxShinsalShown   = 4
	maxExcellentHours = 3
	maxGoodHours      = 4
	maxCautionHours   = 3
)

// GenerateDailyPrecision computes the Tier 1 analysis for "today". Internal
// failures degrade to an empty Section, never an error.
func GenerateDailyPrecision(log *slog.Logger, saju *domain.SajuData, now time.Time, lang string) Tier1Result {
	result := Tier1Result{}

	result.Section = GuardSection(log, "daily_precision", func() (string, error) {
		dayMaster := chart.DayMasterOrDefault(saju)
		natalDay := domain.Pillar{Stem: dayMaster.Stem, Branch: dayMaster.Branch}

		result.TodayPillar = DayPillar(now)
		result.IsGongmangToday = IsGongmang(natalDay, result.TodayPillar.Branch)
		result.ActiveShinsal = ActiveDayShinsal(dayMaster.Stem, dayMaster.Branch, result.TodayPillar.Branch, lang)
		result.DominantElement = dominantElement(saju, dayMaster)
		result.ExcellentHours, result.GoodHours, result.CautionHours = hourBuckets(result.TodayPillar.Branch)

		var b strings.Builder
		b.WriteString(Banner + "\n")
		b.WriteString(tr(lang, "tier1.title") + "\n")
		b.WriteString(Banner + "\n")

		// Fixed line order: pillar, gongmang, shinsal, energy, hour buckets.
		todayElement := elementName(lang, domain.StemElement(result.TodayPillar.Stem))
		b.WriteString(fmt.Sprintf(tr(lang, "tier1.pillar"), result.TodayPillar.Stem, result.TodayPillar.Branch, todayElement) + "\n")

		if result.IsGongmangToday {
			b.WriteString(tr(lang, "tier1.gongmang.yes") + "\n")
		} else {
			b.WriteString(tr(lang, "tier1.gongmang.no") + "\n")
		}

		if len(result.ActiveShinsal) > 0 {
			shown := result.ActiveShinsal
			if len(shown) > maxShinsalShown {
				shown = shown[:maxShinsalShown]
			}
			b.WriteString(fmt.Sprintf(tr(lang, "tier1.shinsal"), strings.Join(shown, ", ")) + "\n")
		}

		b.WriteString(fmt.Sprintf(tr(lang, "tier1.energy"), elementName(lang, result.DominantElement)) + "\n")

		if len(result.ExcellentHours) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier1.hours.best"), strings.Join(result.ExcellentHours, ", ")) + "\n")
		}
		if len(result.GoodHours) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier1.hours.good"), strings.Join(result.GoodHours, ", ")) + "\n")
		}
		if len(result.CautionHours) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier1.hours.care"), strings.Join(result.CautionHours, ", ")) + "\n")
		}

		return b.String(), nil
	})

	return result
}

// dominantElement counts the five elements over the four pillars' stems and
// branches, with the day stem weighted once more. Ties resolve in fixed
// element order.
func dominantElement(saju *domain.SajuData, dayMaster domain.DayMaster) string {
	counts := map[string]int{}

	for _, p := range chart.FourPillars(saju) {
		counts[domain.StemElement(p.Stem)]++
		counts[domain.BranchElement(p.Branch)]++
	}
	counts[domain.StemElement(dayMaster.Stem)]++

	order := []string{"wood", "fire", "earth", "metal", "water"}
	best := order[0]
	for _, e := range order {
		if counts[e] > counts[best] {
			best = e
		}
	}
	return best
}

// hourBuckets sorts the twelve double-hours by their relation to today's
// branch: trine partners are excellent, six-harmony good, clashes caution.
func hourBuckets(todayBranch string) (excellent, good, caution []string) {
	for _, h := range hourRanges {
		label := fmt.Sprintf("%s (%s)", h.Label, h.Branch)
		switch {
		case h.Branch != todayBranch && InTrine(h.Branch, todayBranch):
			if len(excellent) < maxExcellentHours {
				excellent = append(excellent, label)
			}
		case InHarmony(h.Branch, todayBranch):
			if len(good) < maxGoodHours {
				good = append(good, label)
			}
		case InClash(h.Branch, todayBranch):
			if len(caution) < maxCautionHours {
				caution = append(caution, label)
			}
		}
	}
	return excellent, good, caution
}
