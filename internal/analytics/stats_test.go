package analytics

import (
	"testing"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/stretchr/testify/assert"
)

func report(rating float64, priceLevel *int, capacity int, affluence float64) models.VenueReport {
	return models.VenueReport{
		Venue: models.Venue{
			Rating:     &rating,
			PriceLevel: priceLevel,
		},
		Capacity: models.CapacityEstimate{EstimatedCapacity: capacity},
		Crowd:    models.CrowdSnapshot{AffluenceScore: affluence},
	}
}

func intPtr(v int) *int { return &v }

func TestSceneStats(t *testing.T) {
	reports := []models.VenueReport{
		report(4.0, intPtr(1), 20, 30),
		report(5.0, intPtr(3), 60, 70),
		report(3.0, nil, 40, 50),
	}

	summary := SceneStats(reports)

	assert.Equal(t, 3, summary.TotalVenues)
	assert.Equal(t, 4.0, summary.AvgRating)
	assert.Equal(t, 40.0, summary.AvgCapacity)
	assert.Equal(t, 50.0, summary.AvgAffluence)
	assert.Equal(t, 1, summary.PriceDistribution["$"])
	assert.Equal(t, 0, summary.PriceDistribution["$$"])
	assert.Equal(t, 1, summary.PriceDistribution["$$$"])
	assert.Equal(t, 0, summary.PriceDistribution["$$$$"])
}

func TestSceneStatsEmpty(t *testing.T) {
	summary := SceneStats(nil)

	assert.Equal(t, 0, summary.TotalVenues)
	assert.Zero(t, summary.AvgRating)
	assert.Len(t, summary.PriceDistribution, 4)
}
