package scheduler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spoolmeter/config"
	"spoolmeter/internal/errors"
	mockUsecase "spoolmeter/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

type countingMetrics struct {
	sweepFailed int
}

func (m *countingMetrics) IngestObserved(string, string) {}
func (m *countingMetrics) AlertFired(string) {}
func (m *countingMetrics) DeliveryObserved(string, string) {}
func (m *countingMetrics) UsageLogsPurged(int64) {}
func (m *countingMetrics) SweepFailed() { m.sweepFailed++ }
func (m *countingMetrics) PredictionObserved(time.Duration) {}

func newTestSweeper(t *testing.T, schedule string, uc *mockUsecase.MockUsageUsecase, metrics *countingMetrics, out io.Writer) (*sweeper, *fxtest.Lifecycle, error) {
	t.Helper()

	cfg := &config.Config{Telemetry: &config.TelemetryConfig{SweepSchedule: schedule}}
	lc := fxtest.NewLifecycle(t)
	d, err := NewSweeper(SweeperParams{
		Lc:      lc,
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(out, nil)),
		UsageUC: uc,
		Metrics: metrics,
	})
	if err != nil {
		return nil, lc, err
	}

	return d.(*sweeper), lc, nil
}

func TestNewSweeper_RejectsInvalidSchedule(t *testing.T) {
	_, _, err := newTestSweeper(t, "every tuesday", mockUsecase.NewMockUsageUsecase(t), &countingMetrics{}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse sweep schedule")
}

func TestSweeper_Sweep(t *testing.T) {
	t.Run("success logs the count", func(t *testing.T) {
		uc := mockUsecase.NewMockUsageUsecase(t)
		uc.EXPECT().PurgeExpired(mock.Anything).Return(int64(7), nil).Once()
		metrics := &countingMetrics{}
		var buf bytes.Buffer

		s, _, err := newTestSweeper(t, "@hourly", uc, metrics, &buf)
		require.NoError(t, err)

		s.sweep(context.Background())
		assert.Zero(t, metrics.sweepFailed)
		assert.Contains(t, buf.String(), "removed=7")
	})

	t.Run("failure is counted", func(t *testing.T) {
		uc := mockUsecase.NewMockUsageUsecase(t)
		uc.EXPECT().PurgeExpired(mock.Anything).Return(int64(0), errors.New("db down")).Once()
		metrics := &countingMetrics{}
		var buf bytes.Buffer

		s, _, err := newTestSweeper(t, "@hourly", uc, metrics, &buf)
		require.NoError(t, err)

		s.sweep(context.Background())
		assert.Equal(t, 1, metrics.sweepFailed)
		assert.Contains(t, buf.String(), "Failed to purge expired usage logs")
	})
}

func TestSweeper_ServeStopsOnLifecycleStop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	uc := mockUsecase.NewMockUsageUsecase(t)
	s, lc, err := newTestSweeper(t, "@hourly", uc, &countingMetrics{}, io.Discard)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	lc.RequireStart()
	lc.RequireStop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
	require.ErrorIs(t, s.ctx.Err(), context.Canceled)
}
