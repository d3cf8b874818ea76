package analysis

import (
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// 1984-02-02 is a 甲子 day, the anchor of the sexagenary day count.
var jiaziAnchor = time.Date(1984, 2, 2, 0, 0, 0, 0, time.UTC)

// DayPillar returns the sexagenary pillar of a calendar date. Deterministic:
// the same date always maps to the same pillar.
func DayPillar(date time.Time) domain.Pillar {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(jiaziAnchor).Hours() / 24)
	idx := ((days % 60) + 60) % 60
	return domain.Pillar{
		Stem:   domain.Stems[idx%10],
		Branch: domain.Branches[idx%12],
	}
}

// GongmangBranches returns the two void branches of the decade (xun) a day
// pillar belongs to. For the 甲子 xun these are 戌 and 亥.
func GongmangBranches(dayPillar domain.Pillar) [2]string {
	stemIdx := domain.StemIndex(dayPillar.Stem)
	branchIdx := domain.BranchIndex(dayPillar.Branch)
	if stemIdx < 0 {
		stemIdx = 0
	}
	if branchIdx < 0 {
		branchIdx = 0
	}
	offset := ((branchIdx - stemIdx) % 12 + 12) % 12
	return [2]string{
		domain.Branches[(10+offset)%12],
		domain.Branches[(11+offset)%12],
	}
}

// IsGongmang reports whether a branch falls in the day pillar's void pair.
func IsGongmang(dayPillar domain.Pillar, branch string) bool {
	void := GongmangBranches(dayPillar)
	return branch == void[0] || branch == void[1]
}

// Branch trine groups: each branch maps to its group leader index 0..3.
var trineGroup = map[string]int{
	"申": 0, "子": 0, "辰": 0,
	"寅": 1, "午": 1, "戌": 1,
	"巳": 2, "酉": 2, "丑": 2,
	"亥": 3, "卯": 3, "未": 3,
}

// Six-harmony partner of each branch.
var harmonyPartner = map[string]string{
	"子": "丑", "丑": "子",
	"寅": "亥", "亥": "寅",
	"卯": "戌", "戌": "卯",
	"辰": "酉", "酉": "辰",
	"巳": "申", "申": "巳",
	"午": "未", "未": "午",
}

// InTrine reports whether two branches belong to the same trine group.
func InTrine(a, b string) bool {
	ga, ok1 := trineGroup[a]
	gb, ok2 := trineGroup[b]
	return ok1 && ok2 && ga == gb
}

// InHarmony reports whether two branches form a six-harmony pair.
func InHarmony(a, b string) bool {
	return harmonyPartner[a] == b
}

// InClash reports whether two branches oppose each other (6 apart).
func InClash(a, b string) bool {
	ia := domain.BranchIndex(a)
	ib := domain.BranchIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	return (ia+6)%12 == ib
}

// Nobleman (천을귀인) branches per day stem.
var noblemanBranches = map[string][2]string{
	"甲": {"丑", "未"}, "戊": {"丑", "未"}, "庚": {"丑", "未"},
	"乙": {"子", "申"}, "己": {"子", "申"},
	"丙": {"亥", "酉"}, "丁": {"亥", "酉"},
	"辛": {"寅", "午"},
	"壬": {"巳", "卯"}, "癸": {"巳", "卯"},
}

// Travel-star (역마) branch per trine group.
var yeokmaByGroup = [4]string{"寅", "申", "亥", "巳"}

// Peach-blossom (도화) branch per trine group.
var dohwaByGroup = [4]string{"酉", "卯", "午", "子"}

// Canopy (화개) branch per trine group.
var hwagaeByGroup = [4]string{"辰", "戌", "丑", "未"}

// ActiveDayShinsal lists the shinsal markers today's branch activates
// against the natal day pillar, in a fixed check order.
func ActiveDayShinsal(dayStem, dayBranch, todayBranch string, lang string) []string {
	var active []string

	if pair, ok := noblemanBranches[dayStem]; ok {
		if todayBranch == pair[0] || todayBranch == pair[1] {
			active = append(active, tr(lang, "shinsal.nobleman"))
		}
	}

	if group, ok := trineGroup[dayBranch]; ok {
		if todayBranch == yeokmaByGroup[group] {
			active = append(active, tr(lang, "shinsal.travel"))
		}
		if todayBranch == dohwaByGroup[group] {
			active = append(active, tr(lang, "shinsal.peach"))
		}
		if todayBranch == hwagaeByGroup[group] {
			active = append(active, tr(lang, "shinsal.canopy"))
		}
	}

	if InClash(dayBranch, todayBranch) {
		active = append(active, tr(lang, "shinsal.clash"))
	}

	return active
}

// hourRange is one of the twelve double-hours.
type hourRange struct {
	Branch string
	Label  string
}

// The twelve double-hours, 子 starting at 23:00.
var hourRanges = []hourRange{
	{"子", "23:00-01:00"},
	{"丑", "01:00-03:00"},
	{"寅", "03:00-05:00"},
	{"卯", "05:00-07:00"},
	{"辰", "07:00-09:00"},
	{"巳", "09:00-11:00"},
	{"午", "11:00-13:00"},
	{"未", "13:00-15:00"},
	{"申", "15:00-17:00"},
	{"酉", "17:00-19:00"},
	{"戌", "19:00-21:00"},
	{"亥", "21:00-23:00"},
}
