package app

import (
	server "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/primary/http"
	alerterAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/alerter"
	"github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/astrocalc"
	kafkaAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/kafka"
	"github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/llm"
	"github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/storage/redis"
	"github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/storage/s3"
	"github.com/pppaal/saju-astro-chat-sub011/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	CalcAPI  *astrocalc.Config      `envconfig:"CALC_API"`
	LLM      *llm.Config            `envconfig:"LLM"`
	Redis    *redisAdapter.Config   `envconfig:"REDIS"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
	S3       *s3.Config             `envconfig:"S3"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`
	Chat     ChatConfig             `envconfig:"CHAT"`
}

// ChatConfig tunes the chat-stream pipeline itself.
type ChatConfig struct {
	// DevMode skips authentication for local development.
	DevMode      bool   `envconfig:"DEV_MODE" default:"false"`
	SystemPrompt string `envconfig:"SYSTEM_PROMPT"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
