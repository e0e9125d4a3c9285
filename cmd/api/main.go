package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chefbook/internal/api"
	"chefbook/internal/config"
	"chefbook/internal/database"
	"chefbook/internal/domain"
	"chefbook/internal/events"
	"chefbook/internal/logging"
	"chefbook/internal/metrics"
	"chefbook/internal/notify"
	"chefbook/internal/repository"
	"chefbook/internal/service"
	"chefbook/internal/store"
	"chefbook/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Error().Err(err).Str("db_path", cfg.Database.Path).Msg("init database")
		return err
	}
	defer db.Close()

	redisClient := initRedis(cfg, &logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	sessions := initSessions(cfg, redisClient, &logger)

	bus := events.NewEventBus()
	notifier := notify.NewNotifier(0, &logger)
	subscribeNotifier(bus, notifier)

	bookingSvc := service.NewUserBookingService(db, &logger)
	linkWorker := worker.NewLinkWorker(db, redisClient, bookingSvc, worker.RetryPolicy{
		MaxRetries:   cfg.Booking.RetryMaxAttempts,
		InitialDelay: time.Duration(cfg.Booking.RetryInitialSec) * time.Second,
	}, &logger)

	chefSvc := service.NewChefService(db, bus, &logger)
	eventSvc := service.NewEventService(db, bus, linkWorker, &logger)
	profileSvc := service.NewProfileService(db, &logger)

	chefStore := store.NewChefStore(chefSvc, notifier, &logger)
	eventStore := store.NewEventStore(eventSvc, notifier, &logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Начальная загрузка снапшотов; ошибки не фатальны, снапшоты пустые
	if err := chefStore.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial chef load failed")
	}
	if err := eventStore.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("initial event load failed")
	}

	if cfg.Booking.LinkWorkerEnabled {
		go linkWorker.Start(ctx)
	}

	startMetrics(ctx, cfg, &logger)

	httpServer := api.NewHTTPServer(cfg, chefStore, eventStore, bookingSvc, profileSvc, db, sessions, notifier, &logger)
	return startServer(ctx, httpServer, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

func initRedis(cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.Redis.Address == "" {
		return nil
	}

	redisClient := repository.NewRedisClient(cfg.Redis)
	if err := repository.Ping(context.Background(), redisClient); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing without redis")
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	return redisClient
}

// initSessions wires redis-backed sessions with in-memory failover; without
// redis the in-memory repository runs alone.
func initSessions(cfg *config.Config, redisClient *redis.Client, logger *zerolog.Logger) domain.SessionRepository {
	ttl := time.Duration(cfg.Auth.SessionTTLSec) * time.Second
	memory := repository.NewMemorySessionRepository(ttl)
	if redisClient == nil {
		return memory
	}
	primary := repository.NewRedisSessionRepository(redisClient, ttl)
	return repository.NewFailoverSessionRepository(primary, memory, logger)
}

// subscribeNotifier turns confirm/cancel events into operator notices.
func subscribeNotifier(bus *events.EventBus, notifier *notify.Notifier) {
	bus.Subscribe(events.EventBookingConfirmed, func(e *events.Event) error {
		notifier.Success("Booking confirmed")
		return nil
	})
	bus.Subscribe(events.EventBookingCancelled, func(e *events.Event) error {
		notifier.Success("Booking cancelled")
		return nil
	})
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	port := cfg.Monitoring.PrometheusPort
	if port == 0 {
		port = 9090
	}
	go startMetricsServer(ctx, port, logger)
}

func startServer(ctx context.Context, httpServer *api.HTTPServer, logger *zerolog.Logger) error {
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}

	logger.Info().Msg("API server stopped")
	return nil
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
