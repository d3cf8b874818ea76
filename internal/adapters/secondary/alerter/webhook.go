package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client posts operational alerts (llm backend outages and the like) to a
// webhook. Nil-safe: a missing config yields a nil client and callers skip it.
type Client struct {
	webhookURL string
	channel    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.WebhookURL == "" {
		return nil
	}

	return &Client{
		webhookURL: cfg.WebhookURL,
		channel:    cfg.Channel,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// SendAlert delivers one alert message. Failures are returned to the caller,
// which treats them as best-effort.
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	payload := map[string]string{
		"channel": c.channel,
		"text":    message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"channel", c.channel,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}

	c.log.Debug("alert sent successfully",
		"channel", c.channel,
	)

	return nil
}
