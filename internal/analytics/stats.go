package analytics

import "github.com/f0x-sketch/venice-bar-analyzer/internal/models"

type SceneSummary struct {
	TotalVenues       int            `json:"total_venues"`
	AvgRating         float64        `json:"avg_rating"`
	AvgCapacity       float64        `json:"avg_capacity"`
	AvgAffluence      float64        `json:"avg_affluence"`
	PriceDistribution map[string]int `json:"price_distribution"`
}

var priceTierLabels = map[int]string{
	1: "$",
	2: "$$",
	3: "$$$",
	4: "$$$$",
}

// SceneStats aggregates the whole collection run into one summary record.
func SceneStats(reports []models.VenueReport) SceneSummary {
	summary := SceneSummary{
		TotalVenues:       len(reports),
		PriceDistribution: map[string]int{"$": 0, "$$": 0, "$$$": 0, "$$$$": 0},
	}
	if len(reports) == 0 {
		return summary
	}

	ratingSum := 0.0
	capacitySum := 0
	affluenceSum := 0.0
	for _, report := range reports {
		if report.Venue.Rating != nil {
			ratingSum += *report.Venue.Rating
		}
		capacitySum += report.Capacity.EstimatedCapacity
		affluenceSum += report.Crowd.AffluenceScore

		if report.Venue.PriceLevel != nil {
			if label, ok := priceTierLabels[*report.Venue.PriceLevel]; ok {
				summary.PriceDistribution[label]++
			}
		}
	}

	total := float64(len(reports))
	summary.AvgRating = ratingSum / total
	summary.AvgCapacity = float64(capacitySum) / total
	summary.AvgAffluence = affluenceSum / total
	return summary
}
