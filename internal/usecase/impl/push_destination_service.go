package impl

import (
	"context"
	"log/slog"
	"strings"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

type pushDestinationService struct {
	destinationRepo repository.PushDestinationRepository
	clock           quartz.Clock
	logger          *slog.Logger
}

// NewPushDestinationService creates a new push destination service instance
func NewPushDestinationService(
	destinationRepo repository.PushDestinationRepository,
	clock quartz.Clock,
	logger *slog.Logger,
) usecase.PushDestinationUsecase {
	return &pushDestinationService{
		destinationRepo: destinationRepo,
		clock:           clock,
		logger:          logger,
	}
}

// RegisterDestination stores a new destination for the account.
func (s *pushDestinationService) RegisterDestination(ctx context.Context, accountID uuid.UUID, input *usecase.PushDestinationInput) (*entity.PushDestination, error) {
	if err := validateDestinationInput(input); err != nil {
		return nil, err
	}

	destination := &entity.PushDestination{
		ID:        uuid.New(),
		AccountID: accountID,
		Platform:  input.Platform,
		Token:     strings.TrimSpace(input.Token),
		P256dhKey: input.P256dhKey,
		AuthKey:   input.AuthKey,
		CreatedAt: s.clock.Now(),
	}

	if err := s.destinationRepo.CreatePushDestination(ctx, destination); err != nil {
		if errors.Is(err, repository.ErrDuplicatePushDestination) {
			return nil, domainerrors.ErrPushDestinationAlreadyRegistered
		}

		return nil, toStorageError(errors.Wrap(err, "failed to create push destination"))
	}

	s.logger.Info("Push destination registered",
		slog.String("account_id", accountID.String()),
		slog.String("destination_id", destination.ID.String()),
		slog.String("platform", string(destination.Platform)))

	return destination, nil
}

// ListDestinations returns every destination of the account.
func (s *pushDestinationService) ListDestinations(ctx context.Context, accountID uuid.UUID) ([]*entity.PushDestination, error) {
	destinations, err := s.destinationRepo.FindPushDestinationsByAccount(ctx, accountID)
	if err != nil {
		return nil, toStorageError(errors.Wrap(err, "failed to find push destinations"))
	}

	return destinations, nil
}

// RemoveDestination deletes one of the account's destinations. Destinations of
// other accounts are reported as not found.
func (s *pushDestinationService) RemoveDestination(ctx context.Context, accountID, destinationID uuid.UUID) error {
	destination, err := s.destinationRepo.FindPushDestinationByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, repository.ErrPushDestinationNotFound) {
			return domainerrors.ErrPushDestinationNotFound
		}

		return toStorageError(errors.Wrap(err, "failed to find push destination"))
	}

	if destination.AccountID != accountID {
		return domainerrors.ErrPushDestinationNotFound
	}

	if err := s.destinationRepo.DeletePushDestination(ctx, destinationID); err != nil {
		if errors.Is(err, repository.ErrPushDestinationNotFound) {
			return domainerrors.ErrPushDestinationNotFound
		}

		return toStorageError(errors.Wrap(err, "failed to delete push destination"))
	}

	return nil
}

func validateDestinationInput(input *usecase.PushDestinationInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("destination is required")
	}
	if !input.Platform.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unsupported platform: " + string(input.Platform))
	}
	if strings.TrimSpace(input.Token) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}
	if input.Platform == entity.PushPlatformWebPush && (input.P256dhKey == "" || input.AuthKey == "") {
		return domainerrors.ErrValidationFailed.WithDetails("web push destinations require p256dh and auth keys")
	}

	return nil
}
