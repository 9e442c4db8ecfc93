package middleware

import (
    "strconv"
    "time"

    "github.com/bilgisen/newsapi/internal/metrics"
    "github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per route template.
func Metrics(m *metrics.Metrics) fiber.Handler {
    return func(c *fiber.Ctx) error {
        start := time.Now()
        err := c.Next()

        status := responseStatus(c, err)

        route := c.Route().Path
        m.RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
        m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

        return err
    }
}
