package domain

// Fixed sexagenary alphabets. Every stem/branch field in SajuData holds one
// of these single-character tokens; absent values fall back to DefaultStem /
// DefaultBranch instead of empty strings, because the analysis layers assume
// non-empty tokens.
var (
	Stems    = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	Branches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

const (
	DefaultStem   = "甲"
	DefaultBranch = "子"
)

// Five-element assignment for stems and branches.
var stemElements = map[string]string{
	"甲": "wood", "乙": "wood",
	"丙": "fire", "丁": "fire",
	"戊": "earth", "己": "earth",
	"庚": "metal", "辛": "metal",
	"壬": "water", "癸": "water",
}

var branchElements = map[string]string{
	"子": "water", "丑": "earth", "寅": "wood", "卯": "wood",
	"辰": "earth", "巳": "fire", "午": "fire", "未": "earth",
	"申": "metal", "酉": "metal", "戌": "earth", "亥": "water",
}

// StemElement returns the five-element name of a heavenly stem,
// defaulting to the element of DefaultStem for unknown input.
func StemElement(stem string) string {
	if e, ok := stemElements[stem]; ok {
		return e
	}
	return stemElements[DefaultStem]
}

// BranchElement returns the five-element name of an earthly branch,
// defaulting to the element of DefaultBranch for unknown input.
func BranchElement(branch string) string {
	if e, ok := branchElements[branch]; ok {
		return e
	}
	return branchElements[DefaultBranch]
}

// StemIndex returns the position of a stem in the 10-stem alphabet, or -1.
func StemIndex(stem string) int {
	for i, s := range Stems {
		if s == stem {
			return i
		}
	}
	return -1
}

// BranchIndex returns the position of a branch in the 12-branch alphabet, or -1.
func BranchIndex(branch string) int {
	for i, b := range Branches {
		if b == branch {
			return i
		}
	}
	return -1
}

// Pillar is one stem+branch pair of the four pillars.
type Pillar struct {
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

// Pillars holds the four pillars of a chart. Any pillar may be nil when the
// upstream calculator could not resolve it.
type Pillars struct {
	Year  *Pillar `json:"year,omitempty"`
	Month *Pillar `json:"month,omitempty"`
	Day   *Pillar `json:"day,omitempty"`
	Time  *Pillar `json:"time,omitempty"`
}

// DayMaster is the day stem with its branch and element.
type DayMaster struct {
	Stem    string `json:"stem"`
	Branch  string `json:"branch"`
	Element string `json:"element"`
}

// DaeunCycle is one 10-year luck cycle. A cycle is current for age a when
// StartAge <= a < StartAge+10; overlapping input resolves to the first match
// in list order.
type DaeunCycle struct {
	StartAge int    `json:"startAge"`
	Stem     string `json:"stem"`
	Branch   string `json:"branch"`
}

// AnnualLuck is the luck pillar of a single calendar year.
type AnnualLuck struct {
	Year   int    `json:"year"`
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

// LuckCycles groups the decade cycles with the finer-grained sub-cycles.
type LuckCycles struct {
	Daeun   []DaeunCycle `json:"daeun,omitempty"`
	Annual  []AnnualLuck `json:"annual,omitempty"`
	Monthly []Pillar     `json:"monthly,omitempty"`
	Daily   []Pillar     `json:"daily,omitempty"`
}

// ElementBalance is the favorable/unfavorable element split from the
// advanced saju analysis.
type ElementBalance struct {
	Favorable   []string `json:"favorable,omitempty"`
	Unfavorable []string `json:"unfavorable,omitempty"`
}

// SajuData is the full saju chart as delivered by the calculator or by the
// caller. All fields are optional; extractors apply the safe defaults.
type SajuData struct {
	DayMaster *DayMaster      `json:"dayMaster,omitempty"`
	Pillars   *Pillars        `json:"pillars,omitempty"`
	Unse      *LuckCycles     `json:"unse,omitempty"`
	Advanced  *ElementBalance `json:"advancedAnalysis,omitempty"`
	Shinsal   []string        `json:"shinsal,omitempty"`
}

// HasDayMaster reports whether the chart carries a usable day master.
func (s *SajuData) HasDayMaster() bool {
	return s != nil && s.DayMaster != nil && s.DayMaster.Stem != ""
}
