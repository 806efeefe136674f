package repository

import (
	"context"

	"spoolmeter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for push destination persistence.
var (
	// ErrPushDestinationNotFound is returned when a destination is not found.
	ErrPushDestinationNotFound = errors.New("push destination not found")
	// ErrDuplicatePushDestination is returned when the token is already registered.
	ErrDuplicatePushDestination = errors.New("push destination already exists")
)

// PushDestinationRepository manages the registry of push destinations.
type PushDestinationRepository interface {
	// CreatePushDestination registers a destination for an account.
	CreatePushDestination(ctx context.Context, destination *entity.PushDestination) error

	// FindPushDestinationByID retrieves one destination.
	FindPushDestinationByID(ctx context.Context, id uuid.UUID) (*entity.PushDestination, error)

	// FindPushDestinationsByAccount lists every destination registered to an account.
	FindPushDestinationsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.PushDestination, error)

	// DeletePushDestination removes a destination by ID.
	DeletePushDestination(ctx context.Context, id uuid.UUID) error

	// DeletePushDestinationByToken removes a destination by its token. Removing an
	// unknown token is not an error.
	DeletePushDestinationByToken(ctx context.Context, token string) error
}
