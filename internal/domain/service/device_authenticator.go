package service

import (
	"context"

	"spoolmeter/internal/domain/entity"
)

// DeviceAuthenticator resolves a device credential to the spool meter it belongs to.
type DeviceAuthenticator interface {
	// ResolveCredential returns the spool meter when secret matches its stored hash.
	// It fails with ErrUnauthenticated for unknown meters and wrong secrets alike.
	ResolveCredential(ctx context.Context, spoolMeterID, secret string) (*entity.SpoolMeter, error)
}
