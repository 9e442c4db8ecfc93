package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bilgisen/newsapi/internal/config"
	"github.com/bilgisen/newsapi/internal/logger"
	"github.com/bilgisen/newsapi/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// New creates a Fiber app with the global middleware shared by all servers.
func New(cfg *config.Config, name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           cfg.HTTPTimeout,
		WriteTimeout:          cfg.HTTPTimeout,
		IdleTimeout:           120 * time.Second,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// recover sits inside the logger so a panic still produces a request line
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())

	return app
}

// Run serves app until SIGINT/SIGTERM or a listen error, then shuts down
// within cfg.ShutdownTimeout.
func Run(app *fiber.App, cfg *config.Config) error {
	log := logger.Get()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return errors.New("server stopped unexpectedly")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server exited properly")
	return nil
}

// InitLogger configures the global logger from cfg.
func InitLogger(cfg *config.Config) error {
	output := cfg.LogFile
	if output == "" {
		output = "stdout"
	}
	return logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: !cfg.IsProduction() && cfg.LogFile == "",
	})
}
