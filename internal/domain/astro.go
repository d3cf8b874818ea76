package domain

// PlanetPlacement is one chart point. Longitude is the ecliptic longitude in
// degrees [0, 360).
type PlanetPlacement struct {
	Name       string  `json:"name"`
	Sign       string  `json:"sign,omitempty"`
	Degree     float64 `json:"degree,omitempty"`
	Longitude  float64 `json:"longitude"`
	House      int     `json:"house,omitempty"`
	Retrograde bool    `json:"retrograde,omitempty"`
}

// TransitAspect is a current-transit aspect reduced to the fields the prompt
// pipeline renders. Orb is rounded to one decimal by the chart loader.
type TransitAspect struct {
	TransitPlanet string  `json:"transitPlanet"`
	NatalPoint    string  `json:"natalPoint"`
	AspectType    string  `json:"aspectType"`
	Orb           float64 `json:"orb"`
	IsApplying    bool    `json:"isApplying"`
}

// AstroData is the western chart. Loosely populated: any field may be nil.
type AstroData struct {
	Sun           *PlanetPlacement `json:"sun,omitempty"`
	Moon          *PlanetPlacement `json:"moon,omitempty"`
	Mercury       *PlanetPlacement `json:"mercury,omitempty"`
	Venus         *PlanetPlacement `json:"venus,omitempty"`
	Mars          *PlanetPlacement `json:"mars,omitempty"`
	Jupiter       *PlanetPlacement `json:"jupiter,omitempty"`
	Saturn        *PlanetPlacement `json:"saturn,omitempty"`
	Ascendant     *PlanetPlacement `json:"ascendant,omitempty"`
	Chiron        *PlanetPlacement `json:"chiron,omitempty"`
	Lilith        *PlanetPlacement `json:"lilith,omitempty"`
	Vertex        *PlanetPlacement `json:"vertex,omitempty"`
	PartOfFortune *PlanetPlacement `json:"partOfFortune,omitempty"`
	Transits      []TransitAspect  `json:"transits,omitempty"`
	VoidOfCourse  *bool            `json:"voidOfCourse,omitempty"`
}

// HasSun reports whether a natal sun placement is present, the marker the
// chart loader uses to decide between caller-supplied data and recomputation.
func (a *AstroData) HasSun() bool {
	return a != nil && a.Sun != nil
}

// Planets returns the seven classical placements that are present, in the
// fixed sun..saturn order.
func (a *AstroData) Planets() []PlanetPlacement {
	if a == nil {
		return nil
	}
	var out []PlanetPlacement
	for _, p := range []*PlanetPlacement{a.Sun, a.Moon, a.Mercury, a.Venus, a.Mars, a.Jupiter, a.Saturn} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// LocalizedText is a ko/en copy pair produced by the calc backend or by the
// analysis resource tables.
type LocalizedText struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// In picks the copy for a language, falling back to Korean.
func (t LocalizedText) In(lang string) string {
	if lang == LangEN {
		return t.En
	}
	return t.Ko
}

// HarmonicAnalysis is the age-harmonic result from the calc backend.
type HarmonicAnalysis struct {
	Number    int      `json:"number"`
	Strength  float64  `json:"strength"`
	Patterns  []string `json:"patterns,omitempty"`
	Strongest string   `json:"strongest,omitempty"`
}

// EclipseEvent is one upcoming eclipse.
type EclipseEvent struct {
	Type   string  `json:"type"`
	Date   string  `json:"date"`
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

// EclipseImpact is an eclipse aspect to a natal point within orb.
type EclipseImpact struct {
	NatalPoint     string        `json:"natalPoint"`
	AspectType     string        `json:"aspectType"`
	Orb            float64       `json:"orb"`
	Interpretation LocalizedText `json:"interpretation"`
}

// EclipseAnalysis bundles the eclipse lookup results.
type EclipseAnalysis struct {
	Upcoming  []EclipseEvent  `json:"upcoming,omitempty"`
	Impacts   []EclipseImpact `json:"impacts,omitempty"`
	Sensitive bool            `json:"sensitive"`
}

// FixedStar is a catalogue star.
type FixedStar struct {
	Name     string   `json:"name"`
	Nature   string   `json:"nature,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// FixedStarConjunction is a natal-point conjunction within 1°.
type FixedStarConjunction struct {
	Star           FixedStar     `json:"star"`
	NatalPoint     string        `json:"natalPoint"`
	Orb            float64       `json:"orb"`
	Interpretation LocalizedText `json:"interpretation"`
}

// RarePatternMatch is one matched rare saju pattern.
type RarePatternMatch struct {
	Name   LocalizedText `json:"name"`
	Rarity string        `json:"rarity"`
	Score  float64       `json:"score"`
}

// Rarity tiers called out explicitly in the pattern section.
const (
	RarityRare      = "rare"
	RarityVeryRare  = "very_rare"
	RarityLegendary = "legendary"
)
