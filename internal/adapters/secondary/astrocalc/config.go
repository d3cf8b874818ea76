package astrocalc

type Config struct {
	BaseURL    string `envconfig:"BASE_URL"`
	ApiVersion string `envconfig:"VERSION" default:"v1"`
	ApiKey     string `envconfig:"API_KEY"`
	SkipSSL    string `envconfig:"SKIP_SSL"` // deploy env passes strings instead of bools
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
