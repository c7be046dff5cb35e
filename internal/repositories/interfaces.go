package repositories

import (
	"context"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

type VenueRepository interface {
	BulkUpsert(ctx context.Context, venues []*models.Venue, estimates map[string]models.CapacityEstimate) error
	GetAll(ctx context.Context) (map[string]*models.Venue, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type SnapshotRepository interface {
	BulkInsert(ctx context.Context, snapshots []*models.CrowdSnapshot) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
