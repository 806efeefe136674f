package impl

import (
	"context"
	"testing"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/errors"
	mockRepo "spoolmeter/internal/mocks/repository"
	mockSvc "spoolmeter/internal/mocks/service"
	"spoolmeter/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	spoolRepo       *mockRepo.MockSpoolMeterRepository
	preferenceRepo  *mockRepo.MockNotificationPreferenceRepository
	destinationRepo *mockRepo.MockPushDestinationRepository
	pushService     *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	spoolRepo := mockRepo.NewMockSpoolMeterRepository(t)
	preferenceRepo := mockRepo.NewMockNotificationPreferenceRepository(t)
	destinationRepo := mockRepo.NewMockPushDestinationRepository(t)
	pushService := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(spoolRepo, preferenceRepo, destinationRepo, pushService,
		newTestMetrics(t), newTestConfig(), newDiscardLogger())

	return notificationServiceFixtures{
		service:         svc,
		spoolRepo:       spoolRepo,
		preferenceRepo:  preferenceRepo,
		destinationRepo: destinationRepo,
		pushService:     pushService,
	}
}

func testDestinations(accountID uuid.UUID, tokens ...string) []*entity.PushDestination {
	destinations := make([]*entity.PushDestination, len(tokens))
	for idx, token := range tokens {
		destinations[idx] = &entity.PushDestination{
			ID:        uuid.New(),
			AccountID: accountID,
			Platform:  entity.PushPlatformFCM,
			Token:     token,
		}
	}

	return destinations
}

func TestNotificationService_Notify_RemovesPermanentlyInvalidDestination(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	meter := testMeter()
	accountID := uuid.New()
	destinations := testDestinations(accountID, "token-a", "token-b", "token-stale")

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return([]uuid.UUID{accountID}, nil)
	fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, accountID).Return(entity.DefaultNotificationPreference(accountID), nil)
	fx.destinationRepo.EXPECT().FindPushDestinationsByAccount(ctx, accountID).Return(destinations, nil)

	wantData := map[string]string{"spool_meter_id": meter.ID, "alert_kind": "material_low"}
	title := "Low Material Warning"
	body := "About 10% of the material is left on the spool connected to Printer A."

	fx.pushService.EXPECT().Deliver(mock.Anything, destinations[0], title, body, wantData).Return(entity.DeliveryDelivered, nil)
	fx.pushService.EXPECT().Deliver(mock.Anything, destinations[1], title, body, wantData).Return(entity.DeliveryDelivered, nil)
	fx.pushService.EXPECT().Deliver(mock.Anything, destinations[2], title, body, wantData).
		Return(entity.DeliveryPermanentlyInvalid, errors.New("registration-token-not-registered"))
	fx.destinationRepo.EXPECT().DeletePushDestinationByToken(ctx, "token-stale").Return(nil).Once()

	report, err := fx.service.Notify(ctx, meter.ID, entity.AlertMaterialLow)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotifyReport{Recipients: 1, Attempted: 3, Delivered: 2, Removed: 1}, report)
}

func TestNotificationService_Notify_DisabledPreferenceSendsNothing(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	meter := testMeter()
	accountID := uuid.New()

	pref := entity.DefaultNotificationPreference(accountID)
	pref.MaterialLow = false

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return([]uuid.UUID{accountID}, nil)
	fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, accountID).Return(pref, nil)

	report, err := fx.service.Notify(ctx, meter.ID, entity.AlertMaterialLow)
	require.NoError(t, err)
	assert.Zero(t, report.Attempted)
	fx.pushService.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.destinationRepo.AssertNotCalled(t, "FindPushDestinationsByAccount", mock.Anything, mock.Anything)
}

func TestNotificationService_Notify_NoOps(t *testing.T) {
	t.Run("unknown spool meter", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, "ghost").Return(nil, repository.ErrSpoolMeterNotFound)

		report, err := fx.service.Notify(ctx, "ghost", entity.AlertBatteryDead)
		require.NoError(t, err)
		assert.Equal(t, &usecase.NotifyReport{}, report)
	})

	t.Run("no owners", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		meter := testMeter()
		fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
		fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return(nil, nil)

		report, err := fx.service.Notify(ctx, meter.ID, entity.AlertBatteryDead)
		require.NoError(t, err)
		assert.Zero(t, report.Recipients)
	})

	t.Run("missing preference", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		meter := testMeter()
		accountID := uuid.New()
		fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
		fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return([]uuid.UUID{accountID}, nil)
		fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, accountID).Return(nil, repository.ErrNotificationPreferenceNotFound)

		report, err := fx.service.Notify(ctx, meter.ID, entity.AlertBatteryLow)
		require.NoError(t, err)
		assert.Zero(t, report.Attempted)
	})
}

func TestNotificationService_Notify_EveryOwnerIsNotified(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	meter := testMeter()
	first, second := uuid.New(), uuid.New()

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return([]uuid.UUID{first, second}, nil)
	fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, first).Return(entity.DefaultNotificationPreference(first), nil)
	fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, second).Return(entity.DefaultNotificationPreference(second), nil)
	fx.destinationRepo.EXPECT().FindPushDestinationsByAccount(ctx, first).Return(testDestinations(first, "a"), nil)
	fx.destinationRepo.EXPECT().FindPushDestinationsByAccount(ctx, second).Return(testDestinations(second, "b"), nil)
	fx.pushService.EXPECT().
		Deliver(mock.Anything, mock.Anything, "Dead Battery!", "The battery of Printer A is empty!", mock.Anything).
		Return(entity.DeliveryDelivered, nil).
		Times(2)

	report, err := fx.service.Notify(ctx, meter.ID, entity.AlertBatteryDead)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Recipients)
	assert.Equal(t, 2, report.Delivered)
}

func TestNotificationService_Notify_TransientFailureKeepsDestination(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	meter := testMeter()
	accountID := uuid.New()
	destinations := testDestinations(accountID, "flaky", "fine")

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return([]uuid.UUID{accountID}, nil)
	fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, accountID).Return(entity.DefaultNotificationPreference(accountID), nil)
	fx.destinationRepo.EXPECT().FindPushDestinationsByAccount(ctx, accountID).Return(destinations, nil)
	fx.pushService.EXPECT().Deliver(mock.Anything, destinations[0], mock.Anything, mock.Anything, mock.Anything).
		Return(entity.DeliveryTransientFailure, errors.New("503 from transport"))
	fx.pushService.EXPECT().Deliver(mock.Anything, destinations[1], mock.Anything, mock.Anything, mock.Anything).
		Return(entity.DeliveryDelivered, nil)

	report, err := fx.service.Notify(ctx, meter.ID, entity.AlertBatteryLow)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Delivered)
	assert.Zero(t, report.Removed)
	fx.destinationRepo.AssertNotCalled(t, "DeletePushDestinationByToken", mock.Anything, mock.Anything)
}

func TestNotificationService_Notify_StorageFailureBeforeAnyDelivery(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	meter := testMeter()
	accountID := uuid.New()

	fx.spoolRepo.EXPECT().FindSpoolMeterByID(ctx, meter.ID).Return(meter, nil)
	fx.spoolRepo.EXPECT().FindOwnerAccountIDs(ctx, meter.ID).Return([]uuid.UUID{accountID}, nil)
	fx.preferenceRepo.EXPECT().FindNotificationPreference(ctx, accountID).Return(nil, errors.New("connection refused"))

	_, err := fx.service.Notify(ctx, meter.ID, entity.AlertMaterialRanOut)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFailure(err))
}

func TestNotificationService_Notify_UnknownKind(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Notify(context.Background(), "SM-0001", entity.AlertKind("overheated"))
	requireAppError(t, err, "INVALID_INPUT", "")
}
