package middleware

import (
    "errors"
    "time"

    "github.com/bilgisen/newsapi/internal/logger"
    "github.com/gofiber/fiber/v2"
    "github.com/rs/zerolog"
)

// LoggerConfig defines the config for the request logger
type LoggerConfig struct {
    // Next skips logging when it returns true.
    Next func(c *fiber.Ctx) bool

    // Logger defaults to the global logger.
    Logger *zerolog.Logger

    // Fields selects what is logged. Default: DefaultLoggerFields.
    Fields []string
}

// DefaultLoggerFields is used when LoggerConfig.Fields is empty
var DefaultLoggerFields = []string{"method", "path", "route", "status", "latency", "ip", "user_agent", "request_id"}

// NewLogger logs one line per request. It is the only place handler errors
// get logged; the app ErrorHandler only renders them.
func NewLogger(config ...LoggerConfig) fiber.Handler {
    var cfg LoggerConfig
    if len(config) > 0 {
        cfg = config[0]
    }
    if len(cfg.Fields) == 0 {
        cfg.Fields = DefaultLoggerFields
    }
    if cfg.Logger == nil {
        cfg.Logger = logger.Get()
    }

    enabled := make(map[string]bool, len(cfg.Fields))
    for _, f := range cfg.Fields {
        enabled[f] = true
    }

    return func(c *fiber.Ctx) error {
        if cfg.Next != nil && cfg.Next(c) {
            return c.Next()
        }

        start := time.Now()
        err := c.Next()
        status := responseStatus(c, err)

        var event *zerolog.Event
        switch {
        case status >= fiber.StatusInternalServerError:
            event = cfg.Logger.Error()
        case status >= fiber.StatusBadRequest:
            event = cfg.Logger.Warn()
        default:
            event = cfg.Logger.Info()
        }
        if err != nil {
            event = event.Err(err)
        }

        for _, f := range cfg.Fields {
            switch f {
            case "method":
                event = event.Str("method", c.Method())
            case "path":
                event = event.Str("path", c.Path())
            case "route":
                event = event.Str("route", c.Route().Path)
            case "status":
                event = event.Int("status", status)
            case "latency":
                event = event.Dur("latency", time.Since(start))
            case "ip":
                event = event.Str("ip", c.IP())
            case "user_agent":
                event = event.Str("user_agent", c.Get(fiber.HeaderUserAgent))
            case "request_id":
                event = event.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID))
            }
        }

        event.Msg("request")

        return err
    }
}

// RequestLogger is the logger used by the servers
func RequestLogger() fiber.Handler {
    return NewLogger(LoggerConfig{
        Fields: []string{"method", "path", "route", "status", "latency", "ip", "request_id"},
    })
}

// responseStatus is the status the client will see. When err is non-nil the
// app ErrorHandler has not rendered it yet, so the response still says 200.
func responseStatus(c *fiber.Ctx, err error) int {
    if err == nil {
        return c.Response().StatusCode()
    }
    var fe *fiber.Error
    if errors.As(err, &fe) {
        return fe.Code
    }
    return fiber.StatusInternalServerError
}
