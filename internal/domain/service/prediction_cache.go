package service

import (
	"context"

	"spoolmeter/internal/domain/entity"
)

// PredictionVersion identifies the cache generation a lookup observed.
// Invalidate moves a spool meter to a new version, so a prediction stored under
// an older one is never served again.
type PredictionVersion string

// PredictionCache stores computed predictions per spool meter until new history arrives.
type PredictionCache interface {
	// Get returns the cached prediction, nil on a miss, and the current version.
	Get(ctx context.Context, spoolMeterID string) (*entity.Prediction, PredictionVersion, error)

	// Set stores a prediction under the version returned by the Get that preceded its computation.
	Set(ctx context.Context, version PredictionVersion, prediction *entity.Prediction) error

	// Invalidate drops the cached prediction of one spool meter.
	Invalidate(ctx context.Context, spoolMeterID string) error

	// InvalidateAll drops every cached prediction.
	InvalidateAll(ctx context.Context) error
}
