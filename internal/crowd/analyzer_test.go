package crowd

import (
	"reflect"
	"testing"
	"time"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

func flatDay(value int) []int {
	day := make([]int, 24)
	for i := range day {
		day[i] = value
	}
	return day
}

func TestPeakHoursStrictThreshold(t *testing.T) {
	day := []int{
		10, 20, 30, 40, 75, 85, 90, 60, 40, 20, 10, 5,
		5, 5, 5, 5, 5, 5, 10, 20, 60, 80, 90, 70,
	}
	// Hour 23 sits exactly at the threshold and must not count.
	curve := models.PopularityCurve{time.Friday: day}
	got := PeakHours(curve, time.Friday)
	want := []int{4, 5, 6, 21, 22}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PeakHours = %v, want %v", got, want)
	}
}

func TestPeakHoursNoData(t *testing.T) {
	curve := models.PopularityCurve{}
	if got := PeakHours(curve, time.Monday); got != nil {
		t.Errorf("expected no peaks for missing day, got %v", got)
	}
}

func TestBestTimeToVisitFindsQuietestHour(t *testing.T) {
	day := flatDay(50)
	day[14] = 5

	curve := models.PopularityCurve{time.Saturday: day}
	got, ok := BestTimeToVisit(curve, time.Saturday)
	if !ok || got != "14:00" {
		t.Errorf("BestTimeToVisit = (%q, %v), want (\"14:00\", true)", got, ok)
	}
}

func TestBestTimeToVisitWrapsPastMidnight(t *testing.T) {
	day := flatDay(50)
	day[1] = 3  // 01:00 is inside the scanned window
	day[14] = 5 // beaten by the late-night slot

	curve := models.PopularityCurve{time.Saturday: day}
	got, ok := BestTimeToVisit(curve, time.Saturday)
	if !ok || got != "01:00" {
		t.Errorf("BestTimeToVisit = (%q, %v), want (\"01:00\", true)", got, ok)
	}
}

func TestBestTimeToVisitIgnoresMorningHours(t *testing.T) {
	day := flatDay(50)
	day[7] = 1 // quiet but before the window opens

	curve := models.PopularityCurve{time.Sunday: day}
	got, ok := BestTimeToVisit(curve, time.Sunday)
	if !ok || got != "10:00" {
		t.Errorf("BestTimeToVisit = (%q, %v), want (\"10:00\", true)", got, ok)
	}
}

func TestBestTimeToVisitNoData(t *testing.T) {
	curve := models.PopularityCurve{}
	if _, ok := BestTimeToVisit(curve, time.Monday); ok {
		t.Error("expected no best time for a day without data")
	}
}

func TestAffluenceScorePrefersLiveReading(t *testing.T) {
	current := 80
	curve := models.PopularityCurve{time.Friday: flatDay(20)}
	if got := AffluenceScore(&current, curve, time.Friday); got != 80 {
		t.Errorf("live reading should win, got %v", got)
	}
}

func TestAffluenceScoreFallsBackToDayMean(t *testing.T) {
	day := make([]int, 24)
	for i := range day {
		day[i] = 40
		if i%2 == 1 {
			day[i] = 60
		}
	}
	curve := models.PopularityCurve{time.Friday: day}
	if got := AffluenceScore(nil, curve, time.Friday); got != 50 {
		t.Errorf("expected day mean 50, got %v", got)
	}
}

func TestAffluenceScoreNeutralWithoutData(t *testing.T) {
	if got := AffluenceScore(nil, models.PopularityCurve{}, time.Monday); got != 50.0 {
		t.Errorf("expected neutral 50, got %v", got)
	}
}

func TestAnalyzeAssemblesSnapshot(t *testing.T) {
	day := flatDay(30)
	day[22] = 95
	current := 65
	wait := 10

	payload := models.PopularityPayload{
		CurrentPopularity: &current,
		PopularityByDay:   models.PopularityCurve{time.Friday: day},
		TimeSpent:         "30-60 min",
		WaitTime:          &wait,
	}

	snapshot := Analyze(payload, time.Friday)

	if snapshot.AffluenceScore != 65 {
		t.Errorf("expected affluence 65, got %v", snapshot.AffluenceScore)
	}
	if !reflect.DeepEqual(snapshot.PeakHours, []int{22}) {
		t.Errorf("expected peak at 22, got %v", snapshot.PeakHours)
	}
	if snapshot.BestTimeToVisit == "" {
		t.Error("expected a best time to visit")
	}
	if snapshot.TimeSpentMinutes == nil || *snapshot.TimeSpentMinutes != 45 {
		t.Errorf("expected 45 minutes dwell, got %v", snapshot.TimeSpentMinutes)
	}
	if snapshot.WaitTimeMinutes == nil || *snapshot.WaitTimeMinutes != 10 {
		t.Errorf("expected 10 minutes wait, got %v", snapshot.WaitTimeMinutes)
	}
}

func TestAnalyzeEmptyPayload(t *testing.T) {
	snapshot := Analyze(models.PopularityPayload{PopularityByDay: models.PopularityCurve{}}, time.Monday)

	if snapshot.AffluenceScore != 50.0 {
		t.Errorf("expected neutral affluence, got %v", snapshot.AffluenceScore)
	}
	if snapshot.PeakHours != nil {
		t.Errorf("expected no peaks, got %v", snapshot.PeakHours)
	}
	if snapshot.BestTimeToVisit != "" {
		t.Errorf("expected no best time, got %q", snapshot.BestTimeToVisit)
	}
	if snapshot.TimeSpentMinutes != nil {
		t.Error("expected absent dwell time")
	}
}
