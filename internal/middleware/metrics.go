package middleware

//go:generate go tool mockery

import (
	"cmp"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"meetpulse/internal/errtrack"
	"meetpulse/internal/metrics"
)

const httpComponent = "HTTP"

type HTTPRecorder interface {
	Observe(category metrics.Category, operation string, d time.Duration)
	RecordRequest()
	RecordError(component, errorType string)
}

type ErrorReporter interface {
	RecordError(component, errorType, message string, severity errtrack.Severity)
}

// Metrics records every request as an HTTP operation and every 5xx
// response as an error. reporter may be nil.
func Metrics(recorder HTTPRecorder, reporter ErrorReporter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			path := cmp.Or(c.Path(), "/")
			statusCode := c.Response().Status

			var errStr string
			if err != nil {
				errStr = err.Error()
				statusCode = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					statusCode = he.Code
				}
			}

			recorder.RecordRequest()
			recorder.Observe(metrics.CategoryHTTP, c.Request().Method+" "+path, duration)

			if statusCode >= http.StatusInternalServerError {
				errorType := "Status" + strconv.Itoa(statusCode)
				recorder.RecordError(httpComponent, errorType)
				if reporter != nil {
					reporter.RecordError(httpComponent, errorType,
						cmp.Or(errStr, c.Request().Method+" "+path), severityFor(statusCode))
				}
			}

			return err
		}
	}
}

func severityFor(status int) errtrack.Severity {
	if status == http.StatusServiceUnavailable {
		return errtrack.SeverityWarning
	}
	return errtrack.SeverityCritical
}
