package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/primary/http"
	chatstreamController "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/primary/http/controllers/chatstream"
	healthcheckController "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/primary/http/controllers/healthcheck"
	alerterAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/alerter"
	"github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/astrocalc"
	kafkaAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/kafka"
	llmAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/llm"
	"github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/pppaal/saju-astro-chat-sub011/internal/adapters/secondary/storage/s3"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/cache"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/repository"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/service"
	creditRepo "github.com/pppaal/saju-astro-chat-sub011/internal/repository/credit"
	memoryRepo "github.com/pppaal/saju-astro-chat-sub011/internal/repository/memory"
	profileRepo "github.com/pppaal/saju-astro-chat-sub011/internal/repository/profile"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
	chatUsecase "github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chat"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/prompt"

	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB            *sqlx.DB
	HTTPServer    *http.Server
	KafkaProducer *kafkaAdapter.Producer
	Cache         cache.Cache
}

// initDependencies wires the full request pipeline bottom-up.
func (a *App) initDependencies(_ context.Context) (*Dependencies, error) {
	if a.Cfg.CalcAPI == nil || a.Cfg.CalcAPI.BaseURL == "" {
		return nil, fmt.Errorf("calc API configuration is required")
	}
	if a.Cfg.LLM == nil || a.Cfg.LLM.BaseURL == "" {
		return nil, fmt.Errorf("llm backend configuration is required")
	}

	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	repos := a.initRepositories(db)
	external := a.initExternalServices()

	chatService := a.initChatService(repos, external)

	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		chatstreamController.New(chatService, a.Log),
	}
	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)

	return &Dependencies{
		DB:            db,
		HTTPServer:    httpServer,
		KafkaProducer: external.KafkaProducer,
		Cache:         external.Cache,
	}, nil
}

type repositories struct {
	Profile repository.IProfileRepo
	Memory  repository.IMemoryRepo
	Credit  repository.ICreditRepo
}

func (a *App) initRepositories(db *sqlx.DB) *repositories {
	persistenceLayer := pg.NewDB(db)
	return &repositories{
		Profile: profileRepo.New(persistenceLayer, a.Log),
		Memory:  memoryRepo.New(persistenceLayer, a.Log),
		Credit:  creditRepo.New(persistenceLayer, a.Log),
	}
}

// externalServices holds the collaborators around the core pipeline. The
// calc and llm clients are required; the rest may stay nil and the chat
// service skips the corresponding step.
type externalServices struct {
	Calc          *astrocalc.Client
	LLM           *llmAdapter.Client
	Alerter       service.IAlerterService
	Cache         cache.Cache
	KafkaProducer *kafkaAdapter.Producer
	Archive       *s3Adapter.Archive
}

func (a *App) initExternalServices() *externalServices {
	services := &externalServices{
		Calc: astrocalc.NewClient(a.Cfg.CalcAPI, a.Log),
		LLM:  llmAdapter.NewClient(a.Cfg.LLM, a.Log),
	}

	if alerterClient := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log); alerterClient != nil {
		services.Alerter = alerterClient
	}

	if a.Cfg.Redis != nil && a.Cfg.Redis.Host != "" {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		} else {
			services.Cache = redisAdapter.NewClient(redisClient)
			a.Log.Info("redis cache connected successfully")
		}
	}

	if a.Cfg.Kafka != nil && a.Cfg.Kafka.Brokers != "" {
		producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer, continuing without events", "error", err)
		} else {
			services.KafkaProducer = producer
		}
	}

	if a.Cfg.S3 != nil && a.Cfg.S3.Host != "" {
		minioClient, err := a.Cfg.S3.NewClient()
		if err != nil {
			a.Log.Warn("failed to init prompt archive, continuing without", "error", err)
		} else {
			services.Archive = s3Adapter.NewArchive(minioClient, a.Cfg.S3.Bucket, a.Log)
			a.Log.Info("prompt archive connected successfully")
		}
	}

	return services
}

func (a *App) initChatService(repos *repositories, external *externalServices) *chatUsecase.Service {
	var charts service.IChartService = external.Calc
	if external.Cache != nil {
		charts = chart.NewCachedCharts(external.Calc, external.Cache, a.Log)
	}

	svc := &chatUsecase.Service{
		Loader:       chart.NewLoader(charts, a.Log),
		Advanced:     external.Calc,
		Builder:      prompt.NewContextBuilder(a.Log),
		LLM:          external.LLM,
		Profiles:     repos.Profile,
		Memory:       repos.Memory,
		Credits:      repos.Credit,
		Alerter:      external.Alerter,
		Log:          a.Log,
		SystemPrompt: a.Cfg.Chat.SystemPrompt,
		DevMode:      a.Cfg.Chat.DevMode,
	}

	if external.KafkaProducer != nil {
		svc.Events = external.KafkaProducer
	}
	if external.Archive != nil {
		svc.Archive = external.Archive
	}

	return svc
}
