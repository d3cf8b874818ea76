package chart

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/service"
)

const defaultTimezone = "Asia/Seoul"

// Data is the chart bundle one request works with.
type Data struct {
	Saju     *domain.SajuData
	Astro    *domain.AstroData
	Transits []domain.TransitAspect
}

// Loader produces saju + astrology + current-transit data for a birth
// profile, preferring caller-supplied charts over recomputation. Each of the
// three computations degrades independently: a failure is logged and the
// field stays nil, the call itself never fails.
type Loader struct {
	Charts service.IChartService
	Log    *slog.Logger
	Now    func() time.Time
}

func NewLoader(charts service.IChartService, log *slog.Logger) *Loader {
	return &Loader{
		Charts: charts,
		Log:    log,
		Now:    time.Now,
	}
}

// LoadOrCompute fills in whatever charts the caller did not supply.
func (l *Loader) LoadOrCompute(ctx context.Context, profile domain.BirthProfile, saju *domain.SajuData, astro *domain.AstroData) Data {
	data := Data{Saju: saju, Astro: astro}

	if !saju.HasDayMaster() {
		data.Saju = l.computeSaju(ctx, profile, saju)
	}

	natalComputed := false
	if !astro.HasSun() {
		if computed := l.computeNatal(ctx, profile); computed != nil {
			data.Astro = computed
			natalComputed = true
		}
	}

	// Transits only make sense against a chart we just computed; caller-
	// supplied astro is expected to carry its own transit list.
	if natalComputed {
		data.Transits = l.computeTransits(ctx, profile)
		if data.Astro != nil && len(data.Astro.Transits) == 0 {
			data.Astro.Transits = data.Transits
		}
	} else if data.Astro != nil {
		data.Transits = data.Astro.Transits
	}

	return data
}

func (l *Loader) computeSaju(ctx context.Context, profile domain.BirthProfile, supplied *domain.SajuData) *domain.SajuData {
	if profile.Timezone == "" {
		profile.Timezone = defaultTimezone
	}

	computed, err := l.Charts.CalculateSaju(ctx, profile)
	if err != nil {
		l.Log.Warn("saju computation failed, continuing without",
			"error", err,
			"birth_date", profile.BirthDate,
		)
		return supplied
	}
	return computed
}

func (l *Loader) computeNatal(ctx context.Context, profile domain.BirthProfile) *domain.AstroData {
	computed, err := l.Charts.CalculateNatalChart(ctx, profile)
	if err != nil {
		l.Log.Warn("natal chart computation failed, continuing without",
			"error", err,
			"birth_date", profile.BirthDate,
		)
		return nil
	}
	return computed
}

func (l *Loader) computeTransits(ctx context.Context, profile domain.BirthProfile) []domain.TransitAspect {
	now := l.Now()
	transits, err := l.Charts.CalculateTransits(ctx, now, profile.Latitude, profile.Longitude)
	if err != nil {
		l.Log.Warn("transit computation failed, continuing without",
			"error", err,
		)
		return nil
	}

	out := make([]domain.TransitAspect, 0, len(transits))
	for _, t := range transits {
		t.Orb = math.Round(t.Orb*10) / 10
		out = append(out, t)
	}
	return out
}
