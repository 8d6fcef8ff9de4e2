package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/viniciusmachado/adega-backend/api/routes"
	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/notifications"
	"github.com/viniciusmachado/adega-backend/internal/sessions"
	"github.com/viniciusmachado/adega-backend/pkg/config"
	"github.com/viniciusmachado/adega-backend/pkg/db"
	"github.com/viniciusmachado/adega-backend/pkg/logger"
	"github.com/viniciusmachado/adega-backend/pkg/metrics"
	"github.com/viniciusmachado/adega-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap catalog database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing catalog database", err)
		}
	}()

	repo := catalog.NewRepository(dbClient.DB())
	if err := repo.AutoMigrate(); err != nil {
		logg.Error(context.Background(), "failed to migrate catalog schema", err)
		os.Exit(1)
	}
	if cfg.App.IsDev() {
		if err := repo.SeedDev(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed dev catalog", err)
			os.Exit(1)
		}
	}

	var source catalog.Source = repo
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		source, err = catalog.NewCache(repo, redisClient, cfg.Catalog.CacheTTL, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create catalog cache", err)
			os.Exit(1)
		}
	}

	notifier, err := notifications.NewLogNotifier(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifier", err)
		os.Exit(1)
	}

	sessionManager, err := sessions.NewManager(source, notifier, cfg.Cart.Policy())
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	cartMetrics := metrics.NewCartMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Catalog:     source,
			Sessions:    sessionManager,
			CartMetrics: cartMetrics,
			Registry:    registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
