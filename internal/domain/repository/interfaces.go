package repository

import (
	"context"

	"AstroCore/internal/domain/models"
)

// EphemerisSource fetches raw chart payloads from the remote calculation
// backend. The body comes back undecoded; decoding and normalization belong
// to the engine.
type EphemerisSource interface {
	FetchChart(ctx context.Context, birth models.BirthData) ([]byte, error)
	Health(ctx context.Context) error
}

type Metrics interface {
	RecordChartNormalized(source string)
	RecordSynastryScored()
	RecordError(kind string)
	RecordCacheLookup(result string)
	RecordLatency(op string, seconds float64)
}
