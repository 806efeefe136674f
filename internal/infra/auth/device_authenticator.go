package auth

import (
	"context"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/domain/service"

	"github.com/pkg/errors"
)

// deviceAuthenticator verifies device secrets against the stored bcrypt hash.
type deviceAuthenticator struct {
	spoolMeterRepo repository.SpoolMeterRepository
	hasher         service.PasswordHasher
}

// NewDeviceAuthenticator is the constructor for deviceAuthenticator.
func NewDeviceAuthenticator(spoolMeterRepo repository.SpoolMeterRepository, hasher service.PasswordHasher) service.DeviceAuthenticator {
	return &deviceAuthenticator{
		spoolMeterRepo: spoolMeterRepo,
		hasher:         hasher,
	}
}

// ResolveCredential reports unknown meters and wrong secrets with the same error.
func (a *deviceAuthenticator) ResolveCredential(ctx context.Context, spoolMeterID, secret string) (*entity.SpoolMeter, error) {
	meter, err := a.spoolMeterRepo.FindSpoolMeterByID(ctx, spoolMeterID)
	if err != nil {
		if errors.Is(err, repository.ErrSpoolMeterNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load spool meter credential")
	}

	if meter.SecretHash == "" || !a.hasher.Check(secret, meter.SecretHash) {
		return nil, domainerrors.ErrUnauthenticated
	}

	return meter, nil
}
