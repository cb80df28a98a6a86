package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/logging"
)

// Logger logs each HTTP request as one JSON line on stdout, stamped in the
// configured timezone.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, logging.Location())
}

// LoggerWithWriter is Logger with an explicit destination and timezone.
// Fields: request_id (from RequestID), method, path, status, latency in
// milliseconds, plus level, component and event.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		level := "info"
		switch {
		case status >= fiber.StatusInternalServerError:
			level = "error"
		case status >= fiber.StatusBadRequest:
			level = "warn"
		}

		logging.Write(w, loc, map[string]any{
			"level":      level,
			"component":  "http",
			"event":      "request",
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		})

		return err
	}
}
