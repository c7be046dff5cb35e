package crowd

import (
	"fmt"
	"time"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

// Hourly values above this are considered peak traffic.
const peakThreshold = 70

// neutralAffluence is the "no evidence either way" sentinel.
const neutralAffluence = 50.0

// PeakHours returns the hours (0-23) of the given day whose popularity is
// strictly above the peak threshold. A day without data has no peaks.
func PeakHours(curve models.PopularityCurve, day time.Weekday) []int {
	dayData := curve[day]

	var peaks []int
	for hour, popularity := range dayData {
		if popularity > peakThreshold {
			peaks = append(peaks, hour)
		}
	}
	return peaks
}

// BestTimeToVisit finds the least busy slot between 10:00 and 01:00 the next
// day. Ties keep the earliest scanned hour. The bool is false when the day
// has no data.
func BestTimeToVisit(curve models.PopularityCurve, day time.Weekday) (string, bool) {
	dayData := curve[day]
	if len(dayData) == 0 {
		return "", false
	}

	minPopularity := 100
	bestHour := 0
	for hour := 10; hour < 26; hour++ {
		idx := hour % 24
		if idx < len(dayData) && dayData[idx] < minPopularity {
			minPopularity = dayData[idx]
			bestHour = idx
		}
	}

	return fmt.Sprintf("%02d:00", bestHour), true
}

// AffluenceScore rates how busy a venue is on a 0-100 scale. A live reading
// takes full precedence over history; without one the day's hourly mean is
// used, and with no data at all the score stays neutral.
func AffluenceScore(current *int, curve models.PopularityCurve, day time.Weekday) float64 {
	if current != nil {
		return float64(*current)
	}

	dayData := curve[day]
	if len(dayData) == 0 {
		return neutralAffluence
	}

	sum := 0
	for _, popularity := range dayData {
		sum += popularity
	}
	return float64(sum) / float64(len(dayData))
}

// Analyze derives a full crowd snapshot from a popularity payload for the
// given day. It is a pure function: the payload is read, never retained.
func Analyze(payload models.PopularityPayload, day time.Weekday) models.CrowdSnapshot {
	snapshot := models.CrowdSnapshot{
		CurrentPopularity: payload.CurrentPopularity,
		PopularityByDay:   payload.PopularityByDay,
		PeakHours:         PeakHours(payload.PopularityByDay, day),
		AffluenceScore:    AffluenceScore(payload.CurrentPopularity, payload.PopularityByDay, day),
		WaitTimeMinutes:   payload.WaitTime,
	}

	if bestTime, ok := BestTimeToVisit(payload.PopularityByDay, day); ok {
		snapshot.BestTimeToVisit = bestTime
	}

	if minutes, ok := ParseVisitDuration(payload.TimeSpent); ok {
		snapshot.TimeSpentMinutes = &minutes
	}

	return snapshot
}
