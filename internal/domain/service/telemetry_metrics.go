package service

import "time"

// TelemetryMetrics records pipeline counters. Implementations must be safe for concurrent use.
type TelemetryMetrics interface {
	IngestObserved(kind, result string)
	AlertFired(kind string)
	DeliveryObserved(platform, outcome string)
	UsageLogsPurged(count int64)
	SweepFailed()
	PredictionObserved(elapsed time.Duration)
}
