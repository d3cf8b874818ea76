package prompt

import (
	"fmt"
	"strings"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
)

// BuildSnapshot renders the full chart bundle as the base-data context block.
// Everything present goes in; absent fields are skipped without placeholders.
func BuildSnapshot(profile domain.BirthProfile, data chart.Data, lang string) string {
	var b strings.Builder

	if lang == domain.LangEN {
		b.WriteString("[Birth Data]\n")
	} else {
		b.WriteString("[출생 정보]\n")
	}
	if profile.Name != "" {
		b.WriteString("name: " + profile.Name + "\n")
	}
	b.WriteString(fmt.Sprintf("birth: %s %s (%s)\n", profile.BirthDate, profile.BirthTime, profile.Gender))
	b.WriteString(fmt.Sprintf("location: %.4f, %.4f\n", profile.Latitude, profile.Longitude))

	writeSajuSnapshot(&b, data.Saju, lang)
	writeAstroSnapshot(&b, data.Astro, lang)
	writeTransitSnapshot(&b, data.Transits, lang)

	return b.String()
}

func writeSajuSnapshot(b *strings.Builder, saju *domain.SajuData, lang string) {
	if !saju.HasDayMaster() {
		return
	}

	if lang == domain.LangEN {
		b.WriteString("\n[Saju Chart]\n")
	} else {
		b.WriteString("\n[사주 명식]\n")
	}

	dm := chart.DayMasterOrDefault(saju)
	b.WriteString(fmt.Sprintf("day master: %s%s (%s)\n", dm.Stem, dm.Branch, dm.Element))

	pillars := chart.FourPillars(saju)
	labels := [4]string{"year", "month", "day", "hour"}
	for i, p := range pillars {
		b.WriteString(fmt.Sprintf("%s pillar: %s%s\n", labels[i], p.Stem, p.Branch))
	}

	if fav := chart.FavorableElements(saju); len(fav) > 0 {
		b.WriteString("favorable: " + strings.Join(fav, ", ") + "\n")
	}
	if unfav := chart.UnfavorableElements(saju); len(unfav) > 0 {
		b.WriteString("unfavorable: " + strings.Join(unfav, ", ") + "\n")
	}
	if len(saju.Shinsal) > 0 {
		b.WriteString("shinsal: " + strings.Join(saju.Shinsal, ", ") + "\n")
	}
}

func writeAstroSnapshot(b *strings.Builder, astro *domain.AstroData, lang string) {
	planets := astro.Planets()
	if len(planets) == 0 {
		return
	}

	if lang == domain.LangEN {
		b.WriteString("\n[Natal Chart]\n")
	} else {
		b.WriteString("\n[출생 차트]\n")
	}
	for _, p := range planets {
		line := fmt.Sprintf("%s: %s %.1f°", p.Name, p.Sign, p.Degree)
		if p.House > 0 {
			line += fmt.Sprintf(" (house %d)", p.House)
		}
		if p.Retrograde {
			line += " R"
		}
		b.WriteString(line + "\n")
	}
	if astro.Ascendant != nil {
		b.WriteString(fmt.Sprintf("Ascendant: %s %.1f°\n", astro.Ascendant.Sign, astro.Ascendant.Degree))
	}
}

func writeTransitSnapshot(b *strings.Builder, transits []domain.TransitAspect, lang string) {
	if len(transits) == 0 {
		return
	}

	if lang == domain.LangEN {
		b.WriteString("\n[Current Transits]\n")
	} else {
		b.WriteString("\n[현재 트랜짓]\n")
	}
	for _, t := range transits {
		applying := ""
		if t.IsApplying {
			applying = " (applying)"
		}
		b.WriteString(fmt.Sprintf("%s %s %s, orb %.1f°%s\n", t.TransitPlanet, t.AspectType, t.NatalPoint, t.Orb, applying))
	}
}
