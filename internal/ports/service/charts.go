package service

import (
	"context"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// IChartService computes the base charts through the external calculation
// backend. The chart loader treats every call as best-effort.
type IChartService interface {
	CalculateSaju(ctx context.Context, profile domain.BirthProfile) (*domain.SajuData, error)
	CalculateNatalChart(ctx context.Context, profile domain.BirthProfile) (*domain.AstroData, error)
	CalculateTransits(ctx context.Context, now time.Time, latitude, longitude float64) ([]domain.TransitAspect, error)
}

// IAdvancedAstroService covers the deep analyses the tier generators render:
// harmonics, eclipses, fixed stars and rare saju patterns.
type IAdvancedAstroService interface {
	HarmonicChart(ctx context.Context, astro *domain.AstroData, age int) (*domain.HarmonicAnalysis, error)
	EclipseImpacts(ctx context.Context, astro *domain.AstroData, from time.Time) (*domain.EclipseAnalysis, error)
	FixedStarConjunctions(ctx context.Context, astro *domain.AstroData) ([]domain.FixedStarConjunction, error)
	RarePatterns(ctx context.Context, saju *domain.SajuData) ([]domain.RarePatternMatch, error)
}
