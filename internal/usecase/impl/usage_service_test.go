package impl

import (
	"context"
	"testing"
	"time"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/errors"
	mockRepo "spoolmeter/internal/mocks/repository"
	mockSvc "spoolmeter/internal/mocks/service"
	"spoolmeter/internal/usecase"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type usageServiceFixtures struct {
	service   usecase.UsageUsecase
	spoolRepo *mockRepo.MockSpoolMeterRepository
	usageRepo *mockRepo.MockUsageLogRepository
	cache     *mockSvc.MockPredictionCache
	clock     *quartz.Mock
}

func createTestUsageService(t *testing.T) usageServiceFixtures {
	spoolRepo := mockRepo.NewMockSpoolMeterRepository(t)
	usageRepo := mockRepo.NewMockUsageLogRepository(t)
	cache := mockSvc.NewMockPredictionCache(t)
	clock := quartz.NewMock(t)
	clock.Set(testNow)

	svc := NewUsageService(spoolRepo, usageRepo, cache, newTestMetrics(t), clock, newTestConfig(), newDiscardLogger())

	return usageServiceFixtures{
		service:   svc,
		spoolRepo: spoolRepo,
		usageRepo: usageRepo,
		cache:     cache,
		clock:     clock,
	}
}

func (fx usageServiceFixtures) expectOwned(ctx context.Context, accountID uuid.UUID, meter *entity.SpoolMeter) {
	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().IsOwnedBy(ctx, meter.ID, accountID).Return(true, nil)
}

func logAt(start time.Time, seq int64, offsetDays float64, fraction float64) *entity.UsageLogEntry {
	return &entity.UsageLogEntry{
		ID:                uuid.New(),
		SpoolMeterID:      "SM-0001",
		Timestamp:         start.Add(time.Duration(offsetDays * float64(24*time.Hour))),
		RemainingFraction: fraction,
		Sequence:          seq,
	}
}

func TestUsageService_GetUsageHistory_PurgesThenLists(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	accountID := uuid.New()
	meter := testMeter()
	fx.expectOwned(ctx, accountID, meter)

	entries := []*entity.UsageLogEntry{
		logAt(testNow, 1, -2, 0.8),
		logAt(testNow, 2, -1, 0.6),
	}

	purge := fx.usageRepo.EXPECT().DeleteUsageLogsBefore(ctx, testNow.Add(-30*24*time.Hour)).Return(3, nil)
	fx.cache.EXPECT().InvalidateAll(ctx).Return(nil)
	fx.usageRepo.EXPECT().ListUsageLogs(ctx, meter.ID).Return(entries, nil).NotBefore(purge.Call)

	history, err := fx.service.GetUsageHistory(ctx, accountID, meter.ID)
	require.NoError(t, err)
	assert.Equal(t, entries, history)
}

func TestUsageService_GetUsageHistory_Forbidden(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	accountID := uuid.New()
	meter := testMeter()

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().IsOwnedBy(ctx, meter.ID, accountID).Return(false, nil)

	_, err := fx.service.GetUsageHistory(ctx, accountID, meter.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUsageService_GetUsageHistory_UnknownMeter(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, "ghost").Return(nil, repository.ErrSpoolMeterNotFound)

	_, err := fx.service.GetUsageHistory(ctx, uuid.New(), "ghost")
	require.ErrorIs(t, err, domainerrors.ErrSpoolMeterNotFound)
}

func TestUsageService_GetPredictedRunOutDate_ComputesAndCaches(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	accountID := uuid.New()
	meter := testMeter()
	fx.expectOwned(ctx, accountID, meter)

	start := testNow.AddDate(0, 0, -10)
	entries := []*entity.UsageLogEntry{
		logAt(start, 3, 10, 0.0),
		logAt(start, 1, 0, 1.0),
		logAt(start, 2, 5, 0.5),
	}

	fx.cache.EXPECT().Get(ctx, meter.ID).Return(nil, service.PredictionVersion("0.4"), nil)
	fx.usageRepo.EXPECT().ListUsageLogs(ctx, meter.ID).Return(entries, nil)

	var cached *entity.Prediction
	fx.cache.EXPECT().
		Set(ctx, service.PredictionVersion("0.4"), mock.AnythingOfType("*entity.Prediction")).
		Run(func(_ context.Context, _ service.PredictionVersion, prediction *entity.Prediction) { cached = prediction }).
		Return(nil)

	prediction, err := fx.service.GetPredictedRunOutDate(ctx, accountID, meter.ID)
	require.NoError(t, err)
	require.True(t, prediction.Determinable)
	assert.Equal(t, meter.ID, prediction.SpoolMeterID)
	assert.Equal(t, 1, prediction.SessionCount)
	assert.InDelta(t, 10.0, prediction.PredictedDays, 1e-9)
	assert.WithinDuration(t, start.AddDate(0, 0, 10), prediction.RunOutDate, time.Millisecond)
	assert.Same(t, prediction, cached)
}

func TestUsageService_GetPredictedRunOutDate_CacheHit(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	accountID := uuid.New()
	meter := testMeter()
	fx.expectOwned(ctx, accountID, meter)

	hit := &entity.Prediction{SpoolMeterID: meter.ID, Determinable: true, PredictedDays: 3}
	fx.cache.EXPECT().Get(ctx, meter.ID).Return(hit, service.PredictionVersion("0.0"), nil)

	prediction, err := fx.service.GetPredictedRunOutDate(ctx, accountID, meter.ID)
	require.NoError(t, err)
	assert.Same(t, hit, prediction)
}

func TestUsageService_GetPredictedRunOutDate_CacheErrorFallsBack(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	accountID := uuid.New()
	meter := testMeter()
	fx.expectOwned(ctx, accountID, meter)

	fx.cache.EXPECT().Get(ctx, meter.ID).Return(nil, service.PredictionVersion(""), errors.New("redis down"))
	fx.usageRepo.EXPECT().ListUsageLogs(ctx, meter.ID).Return([]*entity.UsageLogEntry{}, nil)

	prediction, err := fx.service.GetPredictedRunOutDate(ctx, accountID, meter.ID)
	require.NoError(t, err)
	assert.False(t, prediction.Determinable)
	assert.Zero(t, prediction.SessionCount)
}

func TestUsageService_GetPredictedRunOutDate_StorageFailure(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	accountID := uuid.New()
	meter := testMeter()
	fx.expectOwned(ctx, accountID, meter)

	fx.cache.EXPECT().Get(ctx, meter.ID).Return(nil, service.PredictionVersion("0.0"), nil)
	fx.usageRepo.EXPECT().ListUsageLogs(ctx, meter.ID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetPredictedRunOutDate(ctx, accountID, meter.ID)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFailure(err))
}

func TestUsageService_PurgeExpired(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()
	cutoff := testNow.Add(-30 * 24 * time.Hour)

	fx.usageRepo.EXPECT().DeleteUsageLogsBefore(ctx, cutoff).Return(0, nil)

	removed, err := fx.service.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestUsageService_PurgeExpired_StorageFailureIsDistinctFromZero(t *testing.T) {
	fx := createTestUsageService(t)
	ctx := context.Background()

	fx.usageRepo.EXPECT().DeleteUsageLogsBefore(ctx, mock.AnythingOfType("time.Time")).Return(0, errors.New("disk full"))

	removed, err := fx.service.PurgeExpired(ctx)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFailure(err))
	assert.Zero(t, removed)
}
