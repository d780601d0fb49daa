package server

import (
	"net/http"
	"time"

	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/internal/util"
	"github.com/brettbedarf/webshell/requests"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter returns a per-client-IP token bucket middleware
func NewRateLimiter(opts config.ServerOptions) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(opts.RateLimitRPS),
		Burst:     opts.RateLimitBurst,
		ExpiresIn: 10 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, requests.ErrorDTO{Error: "cannot identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger := util.GetLogger("RateLimiter")
			logger.Warn().Str("ip", identifier).Msg("Rate limit exceeded")
			return c.JSON(http.StatusTooManyRequests, requests.ErrorDTO{Error: "rate limit exceeded, try again later"})
		},
	})
}

// RequestLogger returns an echo middleware that logs requests through zerolog
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()
			logger := util.GetLogger("HTTP")
			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("ip", c.RealIP()).
				Int64("bytes_out", res.Size).
				Msg("request")

			return err
		}
	}
}
