package analytics

import (
	"math"
	"time"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

type HourSlot struct {
	Hour         int     `json:"hour"`
	AvgAffluence float64 `json:"avg_affluence"`
	VenueCount   int     `json:"venue_count"`
}

type Heatmap struct {
	Day          string     `json:"day"`
	Hourly       []HourSlot `json:"hourly_data"`
	TotalVenues  int        `json:"total_venues"`
	AvgCapacity  float64    `json:"avg_capacity"`
	AvgAffluence float64    `json:"avg_affluence"`
}

// BuildHeatmap averages hourly busyness across every venue that has data for
// the given day, alongside scene-wide capacity and affluence averages.
func BuildHeatmap(reports []models.VenueReport, day time.Weekday) Heatmap {
	heatmap := Heatmap{
		Day:         day.String(),
		Hourly:      make([]HourSlot, 0, 24),
		TotalVenues: len(reports),
	}

	for hour := 0; hour < 24; hour++ {
		sum := 0
		count := 0
		for _, report := range reports {
			dayData := report.Crowd.PopularityByDay[day]
			if hour < len(dayData) {
				sum += dayData[hour]
				count++
			}
		}
		slot := HourSlot{Hour: hour, VenueCount: count}
		if count > 0 {
			slot.AvgAffluence = math.Round(float64(sum)/float64(count)*10) / 10
		}
		heatmap.Hourly = append(heatmap.Hourly, slot)
	}

	if len(reports) > 0 {
		capacitySum := 0
		affluenceSum := 0.0
		for _, report := range reports {
			capacitySum += report.Capacity.EstimatedCapacity
			affluenceSum += report.Crowd.AffluenceScore
		}
		heatmap.AvgCapacity = float64(capacitySum) / float64(len(reports))
		heatmap.AvgAffluence = affluenceSum / float64(len(reports))
	}

	return heatmap
}
