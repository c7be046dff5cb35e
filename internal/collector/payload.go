package collector

import (
	"fmt"
	"time"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

// PopularTimesResponse is the wire shape of an upstream popular-times lookup.
type PopularTimesResponse struct {
	Name              string    `json:"name"`
	CurrentPopularity *int      `json:"current_popularity,omitempty"`
	PopularTimes      []DayData `json:"populartimes"`
	TimeSpent         []int     `json:"time_spent,omitempty"`
	WaitTime          *int      `json:"wait_time,omitempty"`
}

type DayData struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

var dayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

var priceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           models.PriceLevelFree,
	"PRICE_LEVEL_INEXPENSIVE":    models.PriceLevelInexpensive,
	"PRICE_LEVEL_MODERATE":       models.PriceLevelModerate,
	"PRICE_LEVEL_EXPENSIVE":      models.PriceLevelExpensive,
	"PRICE_LEVEL_VERY_EXPENSIVE": models.PriceLevelVeryExpensive,
}

// ParseDayName resolves a weekday name from an upstream payload.
func ParseDayName(name string) (time.Weekday, bool) {
	day, ok := dayNames[name]
	return day, ok
}

// ParsePriceLevel converts the provider's price level string to the 0-4 scale.
// Unknown or missing levels stay nil.
func ParsePriceLevel(priceLevel string) *int {
	if level, ok := priceLevels[priceLevel]; ok {
		return &level
	}
	return nil
}

// NormalizePayload converts a raw popular-times response into the typed
// payload the crowd core consumes. Day names are resolved here, hourly values
// are clamped to 0-100, and the visit-duration pair becomes a "lo-hi min"
// string. Days with unrecognized names are dropped as unusable.
func NormalizePayload(resp PopularTimesResponse) models.PopularityPayload {
	payload := models.PopularityPayload{
		PopularityByDay: make(models.PopularityCurve),
		WaitTime:        resp.WaitTime,
	}

	if resp.CurrentPopularity != nil {
		current := clampPercent(*resp.CurrentPopularity)
		payload.CurrentPopularity = &current
	}

	for _, dayData := range resp.PopularTimes {
		day, ok := ParseDayName(dayData.Name)
		if !ok || len(dayData.Data) == 0 {
			continue
		}
		hours := make([]int, len(dayData.Data))
		for i, v := range dayData.Data {
			hours[i] = clampPercent(v)
		}
		payload.PopularityByDay[day] = hours
	}

	if len(resp.TimeSpent) >= 2 {
		payload.TimeSpent = fmt.Sprintf("%d-%d min", resp.TimeSpent[0], resp.TimeSpent[1])
	}

	return payload
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
