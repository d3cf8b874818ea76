package chart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/cache"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/service"
)

// TTLs reflect how each chart ages: birth data never changes, transits do.
const (
	sajuTTL    = 7 * 24 * time.Hour
	natalTTL   = 30 * 24 * time.Hour
	transitTTL = time.Hour
)

// CachedCharts wraps an IChartService with a cache-or-calculate layer. Cache
// failures never block a computation; they are logged and the call proceeds.
type CachedCharts struct {
	inner service.IChartService
	cache cache.Cache
	log   *slog.Logger
}

func NewCachedCharts(inner service.IChartService, c cache.Cache, log *slog.Logger) *CachedCharts {
	return &CachedCharts{
		inner: inner,
		cache: c,
		log:   log,
	}
}

// profileKey builds the deterministic cache key fragment for a birth profile.
func profileKey(p domain.BirthProfile) string {
	return fmt.Sprintf("%s:%s:%s:%.4f:%.4f", p.BirthDate, p.BirthTime, p.Gender, p.Latitude, p.Longitude)
}

// cacheOrCalculate reads a cached JSON value or computes and stores it.
func cacheOrCalculate[T any](ctx context.Context, c *CachedCharts, key string, ttl time.Duration, calc func() (T, error)) (T, error) {
	var zero T

	if c.cache != nil {
		raw, err := c.cache.Get(ctx, key)
		if err == nil {
			var cached T
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				c.log.Debug("chart cache hit", "key", key)
				return cached, nil
			}
			// Corrupt entry: drop it and recompute.
			_ = c.cache.Delete(ctx, key)
		} else if !errors.Is(err, cache.ErrNotFound) {
			c.log.Warn("chart cache read failed", "error", err, "key", key)
		}
	}

	value, err := calc()
	if err != nil {
		return zero, err
	}

	if c.cache != nil {
		if raw, jsonErr := json.Marshal(value); jsonErr == nil {
			if setErr := c.cache.Set(ctx, key, string(raw), ttl); setErr != nil {
				c.log.Warn("chart cache write failed", "error", setErr, "key", key)
			}
		}
	}

	return value, nil
}

func (c *CachedCharts) CalculateSaju(ctx context.Context, profile domain.BirthProfile) (*domain.SajuData, error) {
	key := "chart:saju:" + profileKey(profile)
	return cacheOrCalculate(ctx, c, key, sajuTTL, func() (*domain.SajuData, error) {
		return c.inner.CalculateSaju(ctx, profile)
	})
}

func (c *CachedCharts) CalculateNatalChart(ctx context.Context, profile domain.BirthProfile) (*domain.AstroData, error) {
	key := "chart:natal:" + profileKey(profile)
	return cacheOrCalculate(ctx, c, key, natalTTL, func() (*domain.AstroData, error) {
		return c.inner.CalculateNatalChart(ctx, profile)
	})
}

func (c *CachedCharts) CalculateTransits(ctx context.Context, now time.Time, latitude, longitude float64) ([]domain.TransitAspect, error) {
	// Hour-bucketed key keeps transits fresh without recomputing per request.
	key := fmt.Sprintf("chart:transits:%s:%.4f:%.4f", now.UTC().Format("2006010215"), latitude, longitude)
	return cacheOrCalculate(ctx, c, key, transitTTL, func() ([]domain.TransitAspect, error) {
		return c.inner.CalculateTransits(ctx, now, latitude, longitude)
	})
}
