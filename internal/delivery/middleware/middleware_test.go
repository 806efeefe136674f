package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spoolmeter/config"
	deliverycontext "spoolmeter/internal/delivery/context"
	domainerrors "spoolmeter/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses client id", incoming: "abc-123", reuse: true},
		{name: "mints when missing"},
		{name: "mints when too long", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "mints on control characters", incoming: "abc\ndef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			mw := NewRequestIDMiddleware(slog.Default())
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})(c)
			require.NoError(t, err)

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, ctxID)
			assert.True(t, hasLogger)
			if tt.reuse {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:    "success is quiet without debug",
			path:    "/api/v1/x",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "success logs in debug",
			debug:   true,
			path:    "/api/v1/x",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: "status=200",
		},
		{
			name:    "health stays quiet in debug",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "app error status is logged",
			path:    "/api/v1/x",
			handler: func(echo.Context) error { return domainerrors.ErrUnauthenticated },
			wantLog: "status=401",
		},
		{
			name:    "echo error status is logged",
			path:    "/api/v1/x",
			handler: func(echo.Context) error { return echo.ErrNotFound },
			wantLog: "status=404",
		},
		{
			name:    "unknown error is a 500",
			path:    "/api/v1/x",
			handler: func(echo.Context) error { return assert.AnError },
			wantLog: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.GET(tt.path, tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "[HTTP] request")
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
