package analytics

import (
	"sort"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

// RecommendationRequest narrows the venue list before ranking. Empty fields
// apply no filter.
type RecommendationRequest struct {
	Vibe         string `json:"vibe,omitempty"`     // quiet, lively, trendy
	Capacity     string `json:"capacity,omitempty"` // small, medium, large
	MaxAffluence *int   `json:"max_affluence,omitempty"`
}

var capacityBands = map[string][2]int{
	"small":  {0, 30},
	"medium": {30, 60},
	"large":  {60, 500},
}

// Recommend filters and ranks venues. The score prefers well-rated venues
// with some room that are not currently packed.
func Recommend(reports []models.VenueReport, req RecommendationRequest, limit int) []models.VenueReport {
	filtered := make([]models.VenueReport, 0, len(reports))
	for _, report := range reports {
		if !matchesVibe(report, req.Vibe) {
			continue
		}
		if !matchesCapacityBand(report, req.Capacity) {
			continue
		}
		if req.MaxAffluence != nil && report.Crowd.AffluenceScore > float64(*req.MaxAffluence) {
			continue
		}
		filtered = append(filtered, report)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return recommendationScore(filtered[i]) > recommendationScore(filtered[j])
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func matchesVibe(report models.VenueReport, vibe string) bool {
	switch vibe {
	case "quiet":
		return report.Capacity.EstimatedCapacity <= 40
	case "lively":
		return report.Capacity.EstimatedCapacity >= 30
	case "trendy":
		return report.Venue.Rating != nil && *report.Venue.Rating >= 4.0 &&
			report.Venue.ReviewCount >= 100
	}
	return true
}

func matchesCapacityBand(report models.VenueReport, band string) bool {
	bounds, ok := capacityBands[band]
	if !ok {
		return true
	}
	capacity := report.Capacity.EstimatedCapacity
	return capacity >= bounds[0] && capacity <= bounds[1]
}

func recommendationScore(report models.VenueReport) float64 {
	score := 0.0
	if report.Venue.Rating != nil {
		score += *report.Venue.Rating * 10
	}
	capacityBonus := float64(report.Capacity.EstimatedCapacity) / 10
	if capacityBonus > 10 {
		capacityBonus = 10
	}
	score += capacityBonus
	score += (100 - report.Crowd.AffluenceScore) / 10
	return score
}
