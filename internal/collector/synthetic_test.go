package collector

import (
	"context"
	"testing"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

func testConfig() *models.Config {
	return &models.Config{
		Seed:          42,
		CityName:      "Venice",
		CityLat:       45.4333,
		CityLng:       12.3378,
		UrbanRadius:   3.0,
		InitialVenues: 10,
	}
}

func TestSyntheticSourceVenues(t *testing.T) {
	source := NewSyntheticSource(testConfig())

	venues, err := source.Venues(context.Background())
	if err != nil {
		t.Fatalf("Venues returned error: %v", err)
	}
	if len(venues) != 10 {
		t.Fatalf("expected 10 venues, got %d", len(venues))
	}

	for _, venue := range venues {
		if venue.ID == "" || venue.Name == "" {
			t.Errorf("venue missing identity: %+v", venue)
		}
		if len(venue.Types) == 0 {
			t.Errorf("venue %s has no types", venue.Name)
		}
		if venue.Rating == nil || *venue.Rating < 1.0 || *venue.Rating > 5.0 {
			t.Errorf("venue %s rating out of range: %v", venue.Name, venue.Rating)
		}
		if venue.PriceLevel != nil && (*venue.PriceLevel < 0 || *venue.PriceLevel > 4) {
			t.Errorf("venue %s price level out of range: %d", venue.Name, *venue.PriceLevel)
		}
		// Generated venues stay within the configured urban radius box.
		if venue.Location.Lat < 45.3 || venue.Location.Lat > 45.6 {
			t.Errorf("venue %s latitude out of range: %v", venue.Name, venue.Location.Lat)
		}
	}
}

func TestSyntheticSourcePopularityIsNormalized(t *testing.T) {
	source := NewSyntheticSource(testConfig())

	payload, err := source.Popularity(context.Background(), "any-id")
	if err != nil {
		t.Fatalf("Popularity returned error: %v", err)
	}

	for day, hours := range payload.PopularityByDay {
		if len(hours) != 24 {
			t.Errorf("%s has %d hours, want 24", day, len(hours))
		}
		for hour, value := range hours {
			if value < 0 || value > 100 {
				t.Errorf("%s hour %d out of range: %d", day, hour, value)
			}
		}
	}

	if payload.CurrentPopularity != nil {
		if *payload.CurrentPopularity < 0 || *payload.CurrentPopularity > 100 {
			t.Errorf("current popularity out of range: %d", *payload.CurrentPopularity)
		}
	}
}

func TestSyntheticSourceRespectsCancellation(t *testing.T) {
	source := NewSyntheticSource(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Venues(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
	if _, err := source.Popularity(ctx, "any-id"); err == nil {
		t.Error("expected error from cancelled context")
	}
}
