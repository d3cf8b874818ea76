package astrocalc

import "github.com/pppaal/saju-astro-chat-sub011/internal/domain"

// SubjectPayload is the birth block every calc request carries.
type SubjectPayload struct {
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Gender    string  `json:"gender"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// ChartRequest is the request body for the saju and natal chart endpoints.
type ChartRequest struct {
	Subject SubjectPayload `json:"subject"`
}

// TransitRequest asks for aspects between the sky at Moment and the natal
// chart of someone observed at the given coordinates.
type TransitRequest struct {
	Moment    string  `json:"moment"` // RFC 3339
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HarmonicRequest asks for the age-harmonic chart.
type HarmonicRequest struct {
	Chart *domain.AstroData `json:"chart"`
	Age   int               `json:"age"`
}

// EclipseRequest asks for upcoming eclipses and their natal impacts.
type EclipseRequest struct {
	Chart *domain.AstroData `json:"chart"`
	From  string            `json:"from"` // RFC 3339
}

// FixedStarRequest asks for fixed-star conjunctions within 1°.
type FixedStarRequest struct {
	Chart *domain.AstroData `json:"chart"`
}

// PatternRequest asks for rare saju pattern matches.
type PatternRequest struct {
	Chart *domain.SajuData `json:"chart"`
}

// envelope is the response wrapper every calc endpoint returns.
type envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type sajuResponse struct {
	envelope
	Data *domain.SajuData `json:"data,omitempty"`
}

type natalResponse struct {
	envelope
	Data *domain.AstroData `json:"data,omitempty"`
}

type transitResponse struct {
	envelope
	Data []domain.TransitAspect `json:"data,omitempty"`
}

type harmonicResponse struct {
	envelope
	Data *domain.HarmonicAnalysis `json:"data,omitempty"`
}

type eclipseResponse struct {
	envelope
	Data *domain.EclipseAnalysis `json:"data,omitempty"`
}

type fixedStarResponse struct {
	envelope
	Data []domain.FixedStarConjunction `json:"data,omitempty"`
}

type patternResponse struct {
	envelope
	Data []domain.RarePatternMatch `json:"data,omitempty"`
}
