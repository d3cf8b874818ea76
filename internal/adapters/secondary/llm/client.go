package llm

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/service"
)

const askStreamEndpoint = "ask-stream"

// Client streams completions from the LLM backend. The whole exchange,
// including reading the streamed body, runs under one abort timeout so a
// stalled backend can never hang a request.
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
		// No client-level timeout: it would also cut off healthy streams.
		// The per-request context deadline does the bounding instead.
		HTTPClient: &http.Client{Transport: transport},
		Log:        log,
	}
}

func (c *Client) buildURL() string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + askStreamEndpoint
}

// AskStream opens the streamed completion. The returned ReadCloser is the
// raw upstream SSE body; closing it releases the timeout context.
func (c *Client) AskStream(ctx context.Context, req service.AskStreamRequest) (io.ReadCloser, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ask-stream request: %w", err)
	}

	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	streamCtx, cancel := context.WithTimeout(ctx, timeout)

	httpReq, err := http.NewRequestWithContext(streamCtx, http.MethodPost, c.buildURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create ask-stream request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if c.cfg.ApiKey != "" {
		httpReq.Header.Set("X-API-KEY", c.cfg.ApiKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to call ask-stream: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		cancel()
		c.Log.Debug("llm backend returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", string(body),
		)
		return nil, fmt.Errorf("llm backend error [status=%d]", resp.StatusCode)
	}

	c.Log.Debug("llm stream opened",
		"theme", req.Theme,
		"locale", req.Locale,
		"prompt_size", len(req.Prompt),
	)

	return &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelOnClose ties the timeout context's lifetime to the response body.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
