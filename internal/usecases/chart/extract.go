package chart

import (
	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// PillarOrDefault resolves a possibly-missing pillar to concrete tokens.
// Missing stems become 甲 and missing branches 子; the analysis layers rely
// on these placeholders instead of handling absent values.
func PillarOrDefault(p *domain.Pillar) domain.Pillar {
	out := domain.Pillar{Stem: domain.DefaultStem, Branch: domain.DefaultBranch}
	if p == nil {
		return out
	}
	if p.Stem != "" {
		out.Stem = p.Stem
	}
	if p.Branch != "" {
		out.Branch = p.Branch
	}
	return out
}

// DayMasterOrDefault resolves the day master with the same placeholder rule.
func DayMasterOrDefault(s *domain.SajuData) domain.DayMaster {
	out := domain.DayMaster{
		Stem:    domain.DefaultStem,
		Branch:  domain.DefaultBranch,
		Element: domain.StemElement(domain.DefaultStem),
	}
	if s == nil || s.DayMaster == nil {
		return out
	}
	if s.DayMaster.Stem != "" {
		out.Stem = s.DayMaster.Stem
	}
	if s.DayMaster.Branch != "" {
		out.Branch = s.DayMaster.Branch
	}
	out.Element = s.DayMaster.Element
	if out.Element == "" {
		out.Element = domain.StemElement(out.Stem)
	}
	return out
}

// FourPillars resolves all four pillars with defaults applied.
func FourPillars(s *domain.SajuData) [4]domain.Pillar {
	var pillars *domain.Pillars
	if s != nil {
		pillars = s.Pillars
	}
	if pillars == nil {
		pillars = &domain.Pillars{}
	}
	return [4]domain.Pillar{
		PillarOrDefault(pillars.Year),
		PillarOrDefault(pillars.Month),
		PillarOrDefault(pillars.Day),
		PillarOrDefault(pillars.Time),
	}
}

// DaeunList returns the decade cycles, nil-safe.
func DaeunList(s *domain.SajuData) []domain.DaeunCycle {
	if s == nil || s.Unse == nil {
		return nil
	}
	return s.Unse.Daeun
}

// ExtractCurrentDaeun returns the decade cycle covering the given age:
// startAge <= age < startAge+10. With overlapping (malformed) input the
// first match in list order wins. Returns nil when no cycle matches.
func ExtractCurrentDaeun(s *domain.SajuData, age int) *domain.DaeunCycle {
	for _, d := range DaeunList(s) {
		if age >= d.StartAge && age < d.StartAge+10 {
			cycle := d
			return &cycle
		}
	}
	return nil
}

// FavorableElements returns the favorable-element list, nil-safe.
func FavorableElements(s *domain.SajuData) []string {
	if s == nil || s.Advanced == nil {
		return nil
	}
	return s.Advanced.Favorable
}

// UnfavorableElements returns the unfavorable-element list, nil-safe.
func UnfavorableElements(s *domain.SajuData) []string {
	if s == nil || s.Advanced == nil {
		return nil
	}
	return s.Advanced.Unfavorable
}
