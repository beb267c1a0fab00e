package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	post_service "blog-service/internal/application/service/post"
	user_service "blog-service/internal/application/service/user"
	"blog-service/internal/application/validation"
	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
	user_repository "blog-service/internal/domain/ports/output/user"
	"blog-service/internal/infrastructure/config"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	user_http "blog-service/internal/infrastructure/inbound/http/user"
	metrics_server "blog-service/internal/infrastructure/inbound/metrics"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/events"
	"blog-service/internal/infrastructure/outbound/events/kafka"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres/migrations"
	post_repository_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	user_repository_postgres "blog-service/internal/infrastructure/outbound/repository/user/postgres"
	"blog-service/internal/infrastructure/outbound/tracing"
)

type storage struct {
	userRepo user_repository.Repository
	postRepo post_repository.Repository
	uow      ports.UnitOfWork
	close    func()
}

func main() {
	storeFlag := flag.String("store", "", "storage backend: postgres or memory (overrides config)")
	flag.Parse()

	cfg := config.MustLoad()
	if *storeFlag != "" {
		cfg.Store = *storeFlag
	}
	ctx := context.Background()
	log := logger.New(cfg.Env)

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.Env, log)
	if err != nil {
		log.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	store, err := openStorage(ctx, cfg, log, metrics)
	if err != nil {
		log.Error("Failed to open storage", slog.String("store", cfg.Store), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var publisher ports.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		log.Info("Publishing events to Kafka",
			slog.Any("brokers", cfg.Kafka.Brokers),
			slog.String("topic", cfg.Kafka.Topic))
		publisher = kafka.NewPublisher(cfg.Kafka, log, metrics)
	} else {
		publisher = events.NewNoopPublisher(log)
	}

	metrics.SetServiceHealth(true)

	userService := user_service.NewUserService(store.userRepo, store.postRepo, store.uow, publisher, log, metrics)
	postService := post_service.NewPostService(store.postRepo, store.uow, publisher, log, metrics)

	validate := validation.New()
	router := delivery_http.NewRouter(
		delivery_http.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Production:     cfg.IsProduction(),
		},
		log,
		metrics,
		user_http.NewUserAPI(userService, validate, log),
		post_http.NewPostAPI(postService, validate, log),
	)
	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, cfg.HTTPServer.ReadHeaderTimeout, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	sig := <-quit
	log.Info("Shutting down servers...", slog.String("signal", sig.String()))

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher", slog.String("error", err.Error()))
	}
	store.close()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to shut down tracing", slog.String("error", err.Error()))
	}

	log.Info("Server exited")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger, metrics ports.MetricsProvider) (*storage, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()
		return &storage{
			userRepo: store.UserRepository(log),
			postRepo: store.PostRepository(log),
			uow:      memory.NewMemoryUOW(store, log),
			close:    func() {},
		}, nil
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(cfg.Database.MigrateURL(), log); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &storage{
		userRepo: user_repository_postgres.NewUserRepository(pool, log, metrics),
		postRepo: post_repository_postgres.NewPostRepository(pool, log, metrics),
		uow:      postgres.NewPostgresUOW(pool, log, metrics),
		close: func() {
			pool.Close()
			log.Info("Postgres pool closed")
		},
	}, nil
}
