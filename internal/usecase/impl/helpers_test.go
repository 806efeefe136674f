package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spoolmeter/config"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/infra/metrics"
	mockRepo "spoolmeter/internal/mocks/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()

	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	return m
}

func newTestConfig() *config.Config {
	return &config.Config{
		Telemetry: &config.TelemetryConfig{
			SessionMargin:       0.10,
			Retention:           30 * 24 * time.Hour,
			SweepSchedule:       "@hourly",
			NotifyTimeout:       time.Second,
			DispatchConcurrency: 2,
		},
	}
}

// expectTransaction runs the transaction body against a factory handing out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	spoolRepo repository.SpoolMeterRepository,
	usageRepo repository.UsageLogRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SpoolMeterRepo().Return(spoolRepo).Maybe()
	factory.EXPECT().UsageLogRepo().Return(usageRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func requireAppError(t *testing.T, err error, code, message string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.ErrorCode())
	if message != "" {
		require.Equal(t, message, appErr.Message())
	}
}
