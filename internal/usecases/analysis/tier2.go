package analysis

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
)

// DaeunInfo is a normalized decade cycle with its element resolved.
type DaeunInfo struct {
	StartAge int
	Stem     string
	Branch   string
	Element  string
}

// Transition is one major daeun changeover synchronized against transits.
type Transition struct {
	Age       int
	Year      int
	Synergy   string
	Score     int
	Themes    []string
	IsCurrent bool
}

// Tier2Result is the daeun-transit synchronization analysis.
type Tier2Result struct {
	Section        string
	Pattern        string
	Confidence     int
	Transitions    []Transition
	PeakYears      []int
	ChallengeYears []int
}

const (
	maxTransitions   = 3
	maxPeakYears     = 3
	maxChallengeYears = 3
	maxThemesPerTransition = 2
)

// GenerateDaeunSync computes Tier 2. An empty decade-cycle list returns
// {Section: ""} without error; internal failures degrade the same way.
func GenerateDaeunSync(log *slog.Logger, saju *domain.SajuData, transits []domain.TransitAspect, currentAge int, now time.Time, lang string) Tier2Result {
	result := Tier2Result{}

	daeunList := normalizeDaeun(saju)
	if len(daeunList) == 0 {
		return result
	}

	result.Section = GuardSection(log, "daeun_sync", func() (string, error) {
		favorable := chart.FavorableElements(saju)
		unfavorable := chart.UnfavorableElements(saju)

		result.Pattern = cyclePattern(daeunList, lang)
		result.Confidence = syncConfidence(daeunList, transits)
		result.Transitions = majorTransitions(daeunList, transits, favorable, currentAge, now, lang)
		result.PeakYears, result.ChallengeYears = peakAndChallengeYears(saju, favorable, unfavorable, now)

		var b strings.Builder
		b.WriteString(Banner + "\n")
		b.WriteString(tr(lang, "tier2.title") + "\n")
		b.WriteString(Banner + "\n")
		b.WriteString(fmt.Sprintf(tr(lang, "tier2.pattern"), result.Pattern) + "\n")
		b.WriteString(fmt.Sprintf(tr(lang, "tier2.confidence"), result.Confidence) + "\n")

		for _, t := range result.Transitions {
			marker := ""
			if t.IsCurrent {
				marker = "👉 "
			}
			b.WriteString(fmt.Sprintf(tr(lang, "tier2.transition"), marker, t.Age, t.Year, t.Synergy, t.Score) + "\n")
			if len(t.Themes) > 0 {
				b.WriteString(fmt.Sprintf(tr(lang, "tier2.themes"), strings.Join(t.Themes, ", ")) + "\n")
			}
		}

		if len(result.PeakYears) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier2.peaks"), joinYears(result.PeakYears)) + "\n")
		}
		if len(result.ChallengeYears) > 0 {
			b.WriteString(fmt.Sprintf(tr(lang, "tier2.challenges"), joinYears(result.ChallengeYears)) + "\n")
		}

		return b.String(), nil
	})

	return result
}

// normalizeDaeun converts raw decade cycles, applying stem/branch defaults
// and resolving the element.
func normalizeDaeun(saju *domain.SajuData) []DaeunInfo {
	raw := chart.DaeunList(saju)
	out := make([]DaeunInfo, 0, len(raw))
	for _, d := range raw {
		stem := d.Stem
		if stem == "" {
			stem = domain.DefaultStem
		}
		branch := d.Branch
		if branch == "" {
			branch = domain.DefaultBranch
		}
		out = append(out, DaeunInfo{
			StartAge: d.StartAge,
			Stem:     stem,
			Branch:   branch,
			Element:  domain.StemElement(stem),
		})
	}
	return out
}

// cyclePattern labels the overall element progression across the cycles.
func cyclePattern(daeun []DaeunInfo, lang string) string {
	distinct := map[string]bool{}
	for _, d := range daeun {
		distinct[d.Element] = true
	}
	switch {
	case len(distinct) >= 4:
		return tr(lang, "pattern.transformative")
	case len(distinct) >= 2:
		return tr(lang, "pattern.cyclical")
	default:
		return tr(lang, "pattern.rising")
	}
}

// syncConfidence scores 0-100 from how much data the sync can lean on.
func syncConfidence(daeun []DaeunInfo, transits []domain.TransitAspect) int {
	confidence := 50 + 5*len(daeun) + 2*len(transits)
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

// majorTransitions picks up to three daeun changeovers around the current
// age and scores each against the transit list.
func majorTransitions(daeun []DaeunInfo, transits []domain.TransitAspect, favorable []string, currentAge int, now time.Time, lang string) []Transition {
	birthYear := now.Year() - currentAge

	var candidates []Transition
	for _, d := range daeun {
		if d.StartAge < currentAge-10 || d.StartAge > currentAge+20 {
			continue
		}

		score := transitionScore(d, transits, favorable)
		candidates = append(candidates, Transition{
			Age:       d.StartAge,
			Year:      birthYear + d.StartAge,
			Synergy:   synergyLabel(score, lang),
			Score:     score,
			Themes:    transitionThemes(d, lang),
			IsCurrent: d.StartAge == currentAge,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxTransitions {
		candidates = candidates[:maxTransitions]
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Age < candidates[j].Age
	})
	return candidates
}

// transitionScore combines the element fit of a cycle with the applying
// transit pressure.
func transitionScore(d DaeunInfo, transits []domain.TransitAspect, favorable []string) int {
	score := 40
	for _, f := range favorable {
		if d.Element == f {
			score += 25
			break
		}
	}
	for _, t := range transits {
		if t.IsApplying {
			score += 5
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

func synergyLabel(score int, lang string) string {
	switch {
	case score >= 70:
		return tr(lang, "synergy.amplify")
	case score >= 45:
		return tr(lang, "synergy.balance")
	default:
		return tr(lang, "synergy.friction")
	}
}

// transitionThemes maps a cycle's element to up to two life themes.
var elementThemes = map[string][]string{
	"wood":  {"theme.growth", "theme.career"},
	"fire":  {"theme.relations", "theme.career"},
	"earth": {"theme.wealth", "theme.health"},
	"metal": {"theme.career", "theme.wealth"},
	"water": {"theme.growth", "theme.relations"},
}

func transitionThemes(d DaeunInfo, lang string) []string {
	keys := elementThemes[d.Element]
	if len(keys) > maxThemesPerTransition {
		keys = keys[:maxThemesPerTransition]
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, tr(lang, k))
	}
	return out
}

// peakAndChallengeYears scans the annual luck pillars against the favorable
// and unfavorable element lists.
func peakAndChallengeYears(saju *domain.SajuData, favorable, unfavorable []string, now time.Time) (peaks, challenges []int) {
	if saju == nil || saju.Unse == nil {
		return nil, nil
	}
	for _, a := range saju.Unse.Annual {
		if a.Year < now.Year() {
			continue
		}
		element := domain.StemElement(a.Stem)
		if contains(favorable, element) && len(peaks) < maxPeakYears {
			peaks = append(peaks, a.Year)
		}
		if contains(unfavorable, element) && len(challenges) < maxChallengeYears {
			challenges = append(challenges, a.Year)
		}
	}
	return peaks, challenges
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func joinYears(years []int) string {
	parts := make([]string, 0, len(years))
	for _, y := range years {
		parts = append(parts, strconv.Itoa(y))
	}
	return strings.Join(parts, ", ")
}
