package llm

import "time"

type Config struct {
	BaseURL string        `envconfig:"BASE_URL"`
	ApiKey  string        `envconfig:"API_KEY"` // forwarded as X-API-KEY
	Timeout time.Duration `envconfig:"TIMEOUT" default:"60s"`
	SkipSSL string        `envconfig:"SKIP_SSL"`
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
