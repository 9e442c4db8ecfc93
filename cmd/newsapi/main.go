package main

import (
    "fmt"
    "os"

    "github.com/bilgisen/newsapi/internal/api"
    "github.com/bilgisen/newsapi/internal/config"
    "github.com/bilgisen/newsapi/internal/logger"
    "github.com/bilgisen/newsapi/internal/metrics"
    "github.com/bilgisen/newsapi/internal/server"
    "github.com/bilgisen/newsapi/internal/store"
)

func main() {
    // Load and validate configuration
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }

    if err := server.InitLogger(cfg); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }

    log := logger.Get()
    log.Info().Str("env", cfg.Env).Msg("Starting news API...")

    // The store lives for the lifetime of the process
    newsStore := store.NewMemory()

    app := server.New(cfg, "newsapi")
    api.SetupStoreRoutes(app, newsStore, metrics.New())

    if err := server.Run(app, cfg); err != nil {
        log.Fatal().Err(err).Msg("Server error")
    }
}
