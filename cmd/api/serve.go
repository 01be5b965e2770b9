package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"multilingual-chatbot/config"
	chatHTTP "multilingual-chatbot/internal/chat/delivery/http"
	"multilingual-chatbot/internal/chat/repository"
	memoryRepo "multilingual-chatbot/internal/chat/repository/memory"
	redisRepo "multilingual-chatbot/internal/chat/repository/redis"
	"multilingual-chatbot/internal/chat/usecase"
	"multilingual-chatbot/internal/httpserver"
	"multilingual-chatbot/internal/middleware"
	"multilingual-chatbot/internal/orchestrator"
	"multilingual-chatbot/internal/speech"
	"multilingual-chatbot/pkg/llmprovider"
	"multilingual-chatbot/pkg/log"
	"multilingual-chatbot/pkg/metrics"
)

func serve(parent context.Context, path string) error {
	// 1. Configuration
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Multilingual Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	m := metrics.New()

	// 4. Session store
	readiness := map[string]httpserver.ReadinessCheck{}
	var repo repository.Repository
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		opt := redisRepo.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
			KeyPrefix:   cfg.Redis.KeyPrefix,
			TTL:         cfg.Session.TTL,
		}
		client, err := redisRepo.Connect(ctx, opt)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer client.Close()

		repo = redisRepo.New(client, opt, logger)
		readiness["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		logger.Infof(ctx, "Session store: redis at %s", cfg.Redis.Addr)
	default:
		repo = memoryRepo.New(memoryRepo.Options{
			Capacity: cfg.Session.Capacity,
			TTL:      cfg.Session.TTL,
		}, logger)
		logger.Infof(ctx, "Session store: memory (capacity %d)", cfg.Session.Capacity)
	}

	// 5. Generation pipeline; any failure here leaves the fallback responder in place
	model := newModelConfig(ctx, logger, &cfg.Model)

	// 6. Orchestrator pool
	pool := orchestrator.NewPool(logger, orchestrator.PoolConfig{
		Capacity:    cfg.Session.Capacity,
		TTL:         cfg.Session.TTL,
		MemoryTurns: cfg.Orchestrator.MemoryTurns,
		Model:       model,
	})
	m.RegisterGaugeFunc("active_orchestrators", "Orchestrators currently held in the pool.", func() float64 {
		return float64(pool.Len())
	})
	logger.Infof(ctx, "Responder mode: %s", pool.Mode())

	// 7. Chat domain
	chatUC := usecase.New(repo, pool, m, logger)
	chatHandler := chatHTTP.New(logger, chatUC)

	// 8. HTTP Server
	mw := middleware.New(logger, m, middleware.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		MaxTrackedPeers:  cfg.RateLimit.MaxTrackedPeers,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		MetricsHandler: m.Handler(),
		Readiness:      readiness,
		ChatHandler:    chatHandler,
		SpeechHandler:  speech.New(logger),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// newModelConfig builds the model-backed settings, or returns nil for the
// fallback responder.
func newModelConfig(ctx context.Context, logger log.Logger, cfg *config.ModelConfig) *orchestrator.ModelConfig {
	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			logger.Warnf(ctx, "Model initialization failed, using fallback responder: %v", err)
		}
		return nil
	}

	gen := cfg.GenerationConfig
	maxTokens := gen.MaxNewTokens
	if maxTokens <= 0 {
		maxTokens = orchestrator.DefaultMaxNewTokens
	}
	temperature := gen.Temperature
	if !gen.DoSample {
		temperature = 0
	}
	stop := append([]string{}, gen.Stop...)
	stop = append(stop, orchestrator.StopSequence)

	manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(cfg), logger)
	for i, p := range manager.Providers() {
		logger.Infof(ctx, "Model-backed responder #%d: %s via %s", i, p.Model(), p.Name())
	}
	return &orchestrator.ModelConfig{
		Generator:   manager,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        gen.TopP,
		Stop:        stop,
	}
}
