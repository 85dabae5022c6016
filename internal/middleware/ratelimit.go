package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"meetpulse/internal/config"
)

const (
	retryAfterHeader = "1"
	bypassHeader     = "X-Rate-Limit-Bypass"

	scopeGeneral   = "general"
	scopeAnalytics = "analytics"
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	Scope      string `json:"scope"`
	RetryAfter int    `json:"retry_after"`
}

var rateLimiterInternalErr = map[string]string{
	"error": "internal server error",
}

type routePolicy struct {
	cfg *config.RateLimitConfig
}

func (p routePolicy) exempt(c echo.Context) bool {
	if hasPrefix(c.Request().URL.Path, p.cfg.ExemptPaths) {
		return true
	}
	if p.cfg.BypassSecret == "" {
		return false
	}
	provided := c.Request().Header.Get(bypassHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(p.cfg.BypassSecret)) == 1
}

func (p routePolicy) analytics(c echo.Context) bool {
	return p.cfg.AnalyticsRPS > 0 && hasPrefix(c.Request().URL.Path, p.cfg.AnalyticsPaths)
}

// RateLimit limits the query API per client IP. Aggregating queries
// (trends, top errors) draw from their own budget. Exempt path prefixes and
// requests carrying the bypass secret are never limited.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	policy := routePolicy{cfg: cfg}
	expires := time.Duration(cfg.ExpireMinutes) * time.Minute

	general := limiter(scopeGeneral, rate.Limit(cfg.RPS), cfg.Burst, expires, logger,
		func(c echo.Context) bool { return policy.exempt(c) || policy.analytics(c) })
	analytics := limiter(scopeAnalytics, rate.Limit(cfg.AnalyticsRPS), cfg.AnalyticsBurst, expires, logger,
		func(c echo.Context) bool { return policy.exempt(c) || !policy.analytics(c) })

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return general(analytics(next))
	}
}

func limiter(
	scope string,
	limit rate.Limit,
	burst int,
	expires time.Duration,
	logger *slog.Logger,
	skip middleware.Skipper,
) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: expires,
		},
	)
	denied := rateLimitResponse{Error: "rate limit exceeded", Scope: scope, RetryAfter: 1}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:   store,
		Skipper: skip,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("scope", scope),
				slog.String("path", c.Request().URL.Path),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, denied)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error",
				slog.String("scope", scope),
				slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
