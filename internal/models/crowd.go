package models

import "time"

// PopularityCurve maps a weekday to its hourly busyness values (0-100, index =
// hour of day). A day with no data simply has no entry or an empty slice.
type PopularityCurve map[time.Weekday][]int

// PopularityPayload is the normalized form of an upstream popular-times
// response, resolved once at the collector boundary.
type PopularityPayload struct {
	CurrentPopularity *int            `json:"current_popularity,omitempty"`
	PopularityByDay   PopularityCurve `json:"popularity_by_day"`
	TimeSpent         string          `json:"time_spent,omitempty"`
	WaitTime          *int            `json:"wait_time,omitempty"`
}

// CrowdSnapshot is derived on demand from a PopularityPayload; it is never
// cached or mutated by the analysis core.
type CrowdSnapshot struct {
	PlaceID           string          `json:"place_id,omitempty"`
	ObservedAt        time.Time       `json:"observed_at,omitempty"`
	CurrentPopularity *int            `json:"current_popularity,omitempty"`
	PopularityByDay   PopularityCurve `json:"popularity_by_day"`
	PeakHours         []int           `json:"peak_hours"`
	BestTimeToVisit   string          `json:"best_time_to_visit,omitempty"`
	AffluenceScore    float64         `json:"affluence_score"`
	TimeSpentMinutes  *int            `json:"time_spent_minutes,omitempty"`
	WaitTimeMinutes   *int            `json:"wait_time_minutes,omitempty"`
}
