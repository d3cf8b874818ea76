package astrocalc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Calc endpoints, relative to {BaseURL}/{ApiVersion}.
const (
	SajuChartPath   = "charts/saju"
	NatalChartPath  = "charts/natal"
	TransitsPath    = "data/transits"
	HarmonicsPath   = "analysis/harmonics"
	EclipsesPath    = "analysis/eclipses"
	FixedStarsPath  = "analysis/fixed-stars"
	RarePatternPath = "analysis/patterns"
)

// truncateString shortens a string for log previews.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client talks to the external saju/astrology calculation service. Every
// caller treats these calls as best-effort; the client itself just reports
// errors.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		Log: log,
	}
}

func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// post marshals the request, performs the call and unmarshals the body into
// out. Non-200 statuses and envelope errors come back as errors with a
// truncated body preview in the debug log.
func (c *Client) post(ctx context.Context, endpoint string, in interface{}, out interface{}) error {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.buildURL(endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("calc API returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("calc API error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.Log.Debug("failed to unmarshal calc API response",
			"endpoint", endpoint,
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("calc API unmarshal failed: %w", err)
	}

	return nil
}

func checkEnvelope(env envelope) error {
	if env.Status != "" && env.Status != "success" {
		return fmt.Errorf("calc API returned error: status=%s, code=%d, message=%s",
			env.Status, env.Code, env.Message)
	}
	return nil
}

func subjectFromProfile(p domain.BirthProfile) SubjectPayload {
	return SubjectPayload{
		Date:      p.BirthDate,
		Time:      p.BirthTime,
		Gender:    p.Gender,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Timezone:  p.Timezone,
	}
}

// CalculateSaju computes the full saju chart for a birth profile.
func (c *Client) CalculateSaju(ctx context.Context, profile domain.BirthProfile) (*domain.SajuData, error) {
	var resp sajuResponse
	if err := c.post(ctx, SajuChartPath, ChartRequest{Subject: subjectFromProfile(profile)}, &resp); err != nil {
		return nil, fmt.Errorf("failed to calculate saju chart: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("calc API returned empty saju chart")
	}
	return resp.Data, nil
}

// CalculateNatalChart computes the western natal chart for a birth profile.
func (c *Client) CalculateNatalChart(ctx context.Context, profile domain.BirthProfile) (*domain.AstroData, error) {
	var resp natalResponse
	if err := c.post(ctx, NatalChartPath, ChartRequest{Subject: subjectFromProfile(profile)}, &resp); err != nil {
		return nil, fmt.Errorf("failed to calculate natal chart: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("calc API returned empty natal chart")
	}
	return resp.Data, nil
}

// CalculateTransits computes current-transit aspects at the given moment and
// location.
func (c *Client) CalculateTransits(ctx context.Context, now time.Time, latitude, longitude float64) ([]domain.TransitAspect, error) {
	req := TransitRequest{
		Moment:    now.Format(time.RFC3339),
		Latitude:  latitude,
		Longitude: longitude,
	}
	var resp transitResponse
	if err := c.post(ctx, TransitsPath, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to calculate transits: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// HarmonicChart computes the age-harmonic analysis.
func (c *Client) HarmonicChart(ctx context.Context, astro *domain.AstroData, age int) (*domain.HarmonicAnalysis, error) {
	var resp harmonicResponse
	if err := c.post(ctx, HarmonicsPath, HarmonicRequest{Chart: astro, Age: age}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get harmonic chart: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("calc API returned empty harmonic analysis")
	}
	return resp.Data, nil
}

// EclipseImpacts lists upcoming eclipses and their natal impacts.
func (c *Client) EclipseImpacts(ctx context.Context, astro *domain.AstroData, from time.Time) (*domain.EclipseAnalysis, error) {
	req := EclipseRequest{Chart: astro, From: from.Format(time.RFC3339)}
	var resp eclipseResponse
	if err := c.post(ctx, EclipsesPath, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to get eclipse impacts: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("calc API returned empty eclipse analysis")
	}
	return resp.Data, nil
}

// FixedStarConjunctions lists fixed-star conjunctions within 1°.
func (c *Client) FixedStarConjunctions(ctx context.Context, astro *domain.AstroData) ([]domain.FixedStarConjunction, error) {
	var resp fixedStarResponse
	if err := c.post(ctx, FixedStarsPath, FixedStarRequest{Chart: astro}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get fixed star conjunctions: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RarePatterns lists rare saju pattern matches.
func (c *Client) RarePatterns(ctx context.Context, saju *domain.SajuData) ([]domain.RarePatternMatch, error) {
	var resp patternResponse
	if err := c.post(ctx, RarePatternPath, PatternRequest{Chart: saju}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get rare patterns: %w", err)
	}
	if err := checkEnvelope(resp.envelope); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
