package collector

import (
	"context"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

// VenueSource is any upstream provider of venue metadata and popularity
// curves. Real collectors (places APIs, popular-times scrapers) and the
// synthetic source all satisfy it; the analyzer does not care which.
type VenueSource interface {
	Venues(ctx context.Context) ([]models.Venue, error)
	Popularity(ctx context.Context, placeID string) (models.PopularityPayload, error)
}
