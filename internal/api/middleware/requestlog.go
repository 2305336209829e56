package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that logs each request with a request
// ID, generating one when the client sends none. Successful health checks
// are logged once until the next failure; failed ones log at warn every
// time.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var checks healthState

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			level := slog.LevelInfo

			if _, ok := healthGauges[path]; ok {
				if isSuccess(status) {
					if !checks.markHealthy(path) {
						return err
					}
				} else {
					checks.markFailed(path)
					level = slog.LevelWarn
				}
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

// healthState remembers which health check paths last reported healthy.
type healthState struct {
	mu      sync.Mutex
	healthy map[string]bool
}

// markHealthy records a successful health check and reports whether it is the
// first success since start or since the last failure.
func (p *healthState) markHealthy(path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.healthy == nil {
		p.healthy = make(map[string]bool)
	}
	if p.healthy[path] {
		return false
	}
	p.healthy[path] = true
	return true
}

func (p *healthState) markFailed(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.healthy != nil {
		p.healthy[path] = false
	}
}
