package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	post_service "blog-service/internal/application/service/post"
	user_service "blog-service/internal/application/service/user"
	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/events"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
	"blog-service/internal/infrastructure/outbound/repository/postgres/migrations"
	post_repository_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	user_repository_postgres "blog-service/internal/infrastructure/outbound/repository/user/postgres"
)

func main() {
	fakeUsers := flag.Int("fake-users", 0, "number of generated users to add after the sample data")
	postsPerUser := flag.Int("posts-per-user", 2, "number of posts for each generated user")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for generated data")
	flag.Parse()

	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	gofakeit.Seed(*seed)

	log.Info("Starting database seeding...")

	if err := migrations.Up(cfg.Database.MigrateURL(), log); err != nil {
		log.Error("Failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Error("Failed to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	publisher := events.NewNoopPublisher(log)
	userRepo := user_repository_postgres.NewUserRepository(pool, log, metrics)
	postRepo := post_repository_postgres.NewPostRepository(pool, log, metrics)
	uow := postgres.NewPostgresUOW(pool, log, metrics)

	seeder := NewSeeder(
		user_service.NewUserService(userRepo, postRepo, uow, publisher, log, metrics),
		post_service.NewPostService(postRepo, uow, publisher, log, metrics),
		log,
	)

	result, err := seeder.Run(ctx, *fakeUsers, *postsPerUser)
	if err != nil {
		log.Error("Error during seeding", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	log.Info("Database seeding completed",
		slog.Int("users", result.Users),
		slog.Int("posts", result.Posts))
}
