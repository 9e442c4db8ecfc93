package main

import (
    "fmt"
    "os"

    "github.com/bilgisen/newsapi/internal/api"
    "github.com/bilgisen/newsapi/internal/cache"
    "github.com/bilgisen/newsapi/internal/config"
    "github.com/bilgisen/newsapi/internal/logger"
    "github.com/bilgisen/newsapi/internal/metrics"
    "github.com/bilgisen/newsapi/internal/provider"
    "github.com/bilgisen/newsapi/internal/server"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }

    if err := server.InitLogger(cfg); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }

    if err := run(cfg); err != nil {
        logger.Get().Fatal().Err(err).Msg("Server error")
    }
}

func run(cfg *config.Config) error {
    log := logger.Get()
    log.Info().Str("env", cfg.Env).Msg("Starting news feed...")

    m := metrics.New()

    var news provider.Provider = provider.NewStatic()

    // Optional Redis cache in front of the provider
    if cfg.RedisURL != "" {
        redisClient, err := cache.NewRedisClient(cfg)
        if err != nil {
            return fmt.Errorf("failed to initialize Redis client: %w", err)
        }
        defer func() {
            log.Info().Msg("Closing Redis client...")
            if err := redisClient.Close(); err != nil {
                log.Error().Err(err).Msg("Error closing Redis client")
            }
        }()

        news = provider.NewCached(news, redisClient, cfg.CacheTTL, m)
        log.Info().Dur("ttl", cfg.CacheTTL).Msg("Provider cache enabled")
    }

    app := server.New(cfg, "newsfeed")
    api.SetupFeedRoutes(app, news, m, cfg.CORSAllowOrigins)

    return server.Run(app, cfg)
}
