package usecase

import (
	"context"

	"spoolmeter/internal/domain/entity"

	"github.com/google/uuid"
)

// PushDestinationInput describes a client surface to register.
type PushDestinationInput struct {
	Platform  entity.PushPlatform `json:"platform"`
	Token     string              `json:"token"`
	P256dhKey string              `json:"p256dh_key"`
	AuthKey   string              `json:"auth_key"`
}

// PushDestinationUsecase manages an account's push destinations.
type PushDestinationUsecase interface {
	RegisterDestination(ctx context.Context, accountID uuid.UUID, input *PushDestinationInput) (*entity.PushDestination, error)
	ListDestinations(ctx context.Context, accountID uuid.UUID) ([]*entity.PushDestination, error)
	RemoveDestination(ctx context.Context, accountID, destinationID uuid.UUID) error
}
