package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"football/internal/config"
	"football/internal/football"
	"football/pkg/cache"
	"football/pkg/cache/rediscache"
	"football/pkg/footballapi/fdorg"
	"football/pkg/logger"
	"football/pkg/storage"
)

// getClient builds the football-data.org client.
func getClient(ctx context.Context, cfg *config.Config) *fdorg.Client {
	client, err := fdorg.New(&http.Client{Timeout: cfg.FootballData.Timeout}, fdorg.Options{
		BaseURL:           cfg.FootballData.BaseURL,
		Token:             cfg.FootballData.Token,
		RequestsPerMinute: cfg.FootballData.RequestsPerMinute,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create football-data client", zap.Error(err))
	}

	return client
}

// getCache connects to Redis when it is configured and falls back to no
// caching otherwise.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis is not configured, caching is disabled")

		return cache.Noop{}, func() {}
	}

	client, err := rediscache.Connect(ctx, rediscache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return rediscache.New(client, cfg.Redis.Namespace), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getService wires the football service. strg may be nil for commands that
// only read from the upstream.
func getService(ctx context.Context, cfg *config.Config, strg storage.Storage) (football.Service, func()) {
	c, closeCache := getCache(ctx, cfg)

	return football.New(getClient(ctx, cfg), c, strg, football.NewOptions(cfg)), closeCache
}
