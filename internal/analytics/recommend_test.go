package analytics

import (
	"testing"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/stretchr/testify/assert"
)

func namedReport(name string, rating float64, reviewCount, capacity int, affluence float64) models.VenueReport {
	r := report(rating, nil, capacity, affluence)
	r.Venue.Name = name
	r.Venue.ReviewCount = reviewCount
	return r
}

func TestRecommendQuietVibe(t *testing.T) {
	reports := []models.VenueReport{
		namedReport("big hall", 4.5, 200, 150, 80),
		namedReport("small bar", 4.0, 50, 30, 20),
	}

	got := Recommend(reports, RecommendationRequest{Vibe: "quiet"}, 0)

	assert.Len(t, got, 1)
	assert.Equal(t, "small bar", got[0].Venue.Name)
}

func TestRecommendTrendyRequiresRatingAndVolume(t *testing.T) {
	reports := []models.VenueReport{
		namedReport("hidden gem", 4.8, 20, 40, 30),   // too few reviews
		namedReport("hot spot", 4.2, 300, 50, 60),    // qualifies
		namedReport("tired place", 3.2, 500, 60, 40), // rating too low
	}

	got := Recommend(reports, RecommendationRequest{Vibe: "trendy"}, 0)

	assert.Len(t, got, 1)
	assert.Equal(t, "hot spot", got[0].Venue.Name)
}

func TestRecommendCapacityBand(t *testing.T) {
	reports := []models.VenueReport{
		namedReport("tiny", 4.0, 50, 20, 50),
		namedReport("mid", 4.0, 50, 45, 50),
		namedReport("huge", 4.0, 50, 120, 50),
	}

	got := Recommend(reports, RecommendationRequest{Capacity: "medium"}, 0)

	assert.Len(t, got, 1)
	assert.Equal(t, "mid", got[0].Venue.Name)
}

func TestRecommendMaxAffluenceCutoff(t *testing.T) {
	limit := 40
	reports := []models.VenueReport{
		namedReport("packed", 4.0, 50, 40, 90),
		namedReport("calm", 4.0, 50, 40, 30),
	}

	got := Recommend(reports, RecommendationRequest{MaxAffluence: &limit}, 0)

	assert.Len(t, got, 1)
	assert.Equal(t, "calm", got[0].Venue.Name)
}

func TestRecommendRanksEmptierVenuesFirst(t *testing.T) {
	reports := []models.VenueReport{
		namedReport("busy", 4.0, 50, 40, 90),
		namedReport("empty", 4.0, 50, 40, 10),
	}

	got := Recommend(reports, RecommendationRequest{}, 0)

	assert.Equal(t, "empty", got[0].Venue.Name)
	assert.Equal(t, "busy", got[1].Venue.Name)
}

func TestRecommendHonorsLimit(t *testing.T) {
	reports := []models.VenueReport{
		namedReport("a", 4.0, 50, 40, 50),
		namedReport("b", 4.5, 50, 40, 50),
		namedReport("c", 3.5, 50, 40, 50),
	}

	got := Recommend(reports, RecommendationRequest{}, 2)

	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Venue.Name)
}
