package impl

import (
	"context"
	"testing"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/errors"
	mockRepo "spoolmeter/internal/mocks/repository"
	"spoolmeter/internal/usecase"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushDestinationServiceFixtures struct {
	service         usecase.PushDestinationUsecase
	destinationRepo *mockRepo.MockPushDestinationRepository
}

func createTestPushDestinationService(t *testing.T) pushDestinationServiceFixtures {
	destinationRepo := mockRepo.NewMockPushDestinationRepository(t)
	clock := quartz.NewMock(t)
	clock.Set(testNow)

	return pushDestinationServiceFixtures{
		service:         NewPushDestinationService(destinationRepo, clock, newDiscardLogger()),
		destinationRepo: destinationRepo,
	}
}

func TestPushDestinationService_RegisterDestination_WebPush(t *testing.T) {
	fx := createTestPushDestinationService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.destinationRepo.EXPECT().CreatePushDestination(ctx, mock.AnythingOfType("*entity.PushDestination")).Return(nil)

	destination, err := fx.service.RegisterDestination(ctx, accountID, &usecase.PushDestinationInput{
		Platform:  entity.PushPlatformWebPush,
		Token:     " https://push.example.com/sub/1 ",
		P256dhKey: "p256dh",
		AuthKey:   "auth",
	})
	require.NoError(t, err)
	assert.Equal(t, accountID, destination.AccountID)
	assert.Equal(t, "https://push.example.com/sub/1", destination.Token)
	assert.Equal(t, testNow, destination.CreatedAt)
	assert.NotEqual(t, uuid.Nil, destination.ID)
}

func TestPushDestinationService_RegisterDestination_Duplicate(t *testing.T) {
	fx := createTestPushDestinationService(t)
	ctx := context.Background()

	fx.destinationRepo.EXPECT().CreatePushDestination(ctx, mock.Anything).Return(repository.ErrDuplicatePushDestination)

	_, err := fx.service.RegisterDestination(ctx, uuid.New(), &usecase.PushDestinationInput{Platform: entity.PushPlatformFCM, Token: "t"})
	require.ErrorIs(t, err, domainerrors.ErrPushDestinationAlreadyRegistered)
}

func TestPushDestinationService_RegisterDestination_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.PushDestinationInput
	}{
		{name: "nil input", input: nil},
		{name: "unknown platform", input: &usecase.PushDestinationInput{Platform: "sms", Token: "t"}},
		{name: "empty token", input: &usecase.PushDestinationInput{Platform: entity.PushPlatformFCM, Token: " "}},
		{name: "web push without keys", input: &usecase.PushDestinationInput{Platform: entity.PushPlatformWebPush, Token: "https://x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushDestinationService(t)

			_, err := fx.service.RegisterDestination(context.Background(), uuid.New(), tt.input)
			requireAppError(t, err, "VALIDATION_FAILED", "")
		})
	}
}

func TestPushDestinationService_RemoveDestination(t *testing.T) {
	fx := createTestPushDestinationService(t)
	ctx := context.Background()
	accountID := uuid.New()
	destination := &entity.PushDestination{ID: uuid.New(), AccountID: accountID, Token: "t"}

	fx.destinationRepo.EXPECT().FindPushDestinationByID(ctx, destination.ID).Return(destination, nil)
	fx.destinationRepo.EXPECT().DeletePushDestination(ctx, destination.ID).Return(nil)

	require.NoError(t, fx.service.RemoveDestination(ctx, accountID, destination.ID))
}

func TestPushDestinationService_RemoveDestination_OtherAccount(t *testing.T) {
	fx := createTestPushDestinationService(t)
	ctx := context.Background()
	destination := &entity.PushDestination{ID: uuid.New(), AccountID: uuid.New(), Token: "t"}

	fx.destinationRepo.EXPECT().FindPushDestinationByID(ctx, destination.ID).Return(destination, nil)

	err := fx.service.RemoveDestination(ctx, uuid.New(), destination.ID)
	require.ErrorIs(t, err, domainerrors.ErrPushDestinationNotFound)
}

func TestPushDestinationService_ListDestinations_StorageFailure(t *testing.T) {
	fx := createTestPushDestinationService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.destinationRepo.EXPECT().FindPushDestinationsByAccount(ctx, accountID).Return(nil, errors.New("timeout"))

	_, err := fx.service.ListDestinations(ctx, accountID)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageFailure(err))
}
