package middleware

import (
	"log/slog"
	"slices"
	"time"

	"spoolmeter/config"
	deliverycontext "spoolmeter/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are probed constantly and only logged when they fail.
var quietPaths = []string{"/health", "/metrics"}

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs every failed request, and every request when debug is on.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Resolve the status now; the central error handler has not written it yet.
		status := c.Response().Status
		if err != nil {
			status = statusOf(err, status)
		}

		if m.debug || status >= 400 {
			if status < 400 && slices.Contains(quietPaths, c.Path()) {
				return err
			}
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func statusOf(err error, fallback int) int {
	var httpErr *echo.HTTPError
	if ok := asHTTPError(err, &httpErr); ok {
		return httpErr.Code
	}
	if appErr, ok := asAppError(err); ok {
		return appErr.HTTPCode()
	}
	if fallback < 400 {
		return 500
	}

	return fallback
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "[HTTP] request", fields...)
}
