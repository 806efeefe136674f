package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"spoolmeter/config"
	"spoolmeter/internal/delivery/worker/handler"
	mockUsecase "spoolmeter/internal/mocks/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func TestNewServer_Routes(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	params := ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:   cfg,
			Logger:   logger,
			Notifier: mockUsecase.NewMockNotificationUsecase(t),
		}),
		Registry: prometheus.NewRegistry(),
	}

	_, err := NewServer(params)
	assert.NoError(t, err)

	e := newEcho(params)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
