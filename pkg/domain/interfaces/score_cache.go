package interfaces

import (
	"context"
	"time"

	"github.com/reef-world/finsync/pkg/domain/model"
)

// ScoreCache defines the interface for the location-average score cache.
// Entries are written once per Portal ingestion run and read by the
// rendering collaborator; they expire after a multi-week TTL.
type ScoreCache interface {
	// Put stores the given averages, each with the supplied TTL
	Put(ctx context.Context, averages []model.LocationAverage, ttl time.Duration) error

	// Get retrieves the average for a (country, location) pair.
	// Returns model.ErrScoreNotFound when no entry exists or it expired.
	Get(ctx context.Context, country, location string) (float64, error)

	Close() error
}
