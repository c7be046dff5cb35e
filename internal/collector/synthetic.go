package collector

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// SyntheticSource generates plausible venues and popularity curves so the
// pipeline can run without touching any live provider. Venue attributes are
// deterministic for a fixed seed; IDs are fresh cuids on every run.
type SyntheticSource struct {
	cfg  *models.Config
	fake faker.Faker
	rng  *rand.Rand
}

var venueTypePool = []string{
	"wine_bar", "bar", "pub", "night_club", "lounge",
	"sports_bar", "rooftop_bar", "speakeasy", "dive_bar", "tapas_bar",
}

var reviewTemplates = []string{
	"Great little bar, very cozy with about %d seats",
	"Lovely spot for an aperitivo, quite intimate",
	"Huge place, easily fits %d people on a Friday night",
	"Small but the spritz is excellent",
	"Spacious terrace and quick service",
	"Average bar, nothing special but reliable",
	"Tiny counter, maybe %d spots at the bar",
	"Crowded at peak hours but worth the wait",
	"The back room holds %d for private events",
}

// Rough busyness shape of a bar day, hour 0-23. Scaled and jittered per day.
var barDayShape = [24]int{
	15, 8, 4, 2, 0, 0, 0, 0, 5, 10,
	15, 25, 35, 30, 20, 20, 30, 45, 65, 70,
	60, 75, 80, 50,
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func NewSyntheticSource(cfg *models.Config) *SyntheticSource {
	seed := int64(cfg.Seed)
	return &SyntheticSource{
		cfg:  cfg,
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *SyntheticSource) Venues(ctx context.Context) ([]models.Venue, error) {
	venues := make([]models.Venue, 0, s.cfg.InitialVenues)
	for i := 0; i < s.cfg.InitialVenues; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		venues = append(venues, s.createVenue())
	}
	return venues, nil
}

func (s *SyntheticSource) createVenue() models.Venue {
	latRange := s.cfg.UrbanRadius / 111.0
	lngRange := latRange / math.Cos(s.cfg.CityLat*math.Pi/180.0)

	latOffset := (s.rng.Float64()*2 - 1) * latRange
	lngOffset := (s.rng.Float64()*2 - 1) * lngRange

	venue := models.Venue{
		ID:   cuid.New(),
		Name: s.fake.Company().Name(),
		Address: fmt.Sprintf("%s, %s",
			s.fake.Address().StreetAddress(), s.cfg.CityName),
		Location: models.Location{
			Lat: s.cfg.CityLat + latOffset,
			Lng: s.cfg.CityLng + lngOffset,
		},
		Phone:       s.fake.Phone().Number(),
		Website:     s.fake.Internet().URL(),
		ReviewCount: s.fake.IntBetween(0, 1500),
		PhotoCount:  s.fake.IntBetween(0, 40),
		Types:       s.pickTypes(),
	}

	rating := s.fake.Float64(1, 25, 50) / 10
	venue.Rating = &rating

	// A fair share of venues never report a price tier.
	if s.rng.Float64() < 0.7 {
		priceLevel := s.fake.IntBetween(0, 4)
		venue.PriceLevel = &priceLevel
	}

	reviewCount := s.fake.IntBetween(0, 5)
	for i := 0; i < reviewCount; i++ {
		venue.Reviews = append(venue.Reviews, s.createReview())
	}

	return venue
}

func (s *SyntheticSource) pickTypes() []string {
	types := []string{venueTypePool[s.rng.Intn(len(venueTypePool))]}
	if s.rng.Float64() < 0.5 {
		types = append(types, "bar")
	}
	if s.rng.Float64() < 0.3 {
		types = append(types, "establishment")
	}
	return types
}

func (s *SyntheticSource) createReview() models.Review {
	template := reviewTemplates[s.rng.Intn(len(reviewTemplates))]
	text := template
	if strings.Contains(template, "%d") {
		text = fmt.Sprintf(template, s.fake.IntBetween(8, 180))
	}
	return models.Review{
		Author: s.fake.Person().Name(),
		Rating: s.fake.IntBetween(1, 5),
		Text:   text,
	}
}

// Popularity fabricates a popular-times response for the venue and runs it
// through the same normalization path real payloads take.
func (s *SyntheticSource) Popularity(ctx context.Context, placeID string) (models.PopularityPayload, error) {
	select {
	case <-ctx.Done():
		return models.PopularityPayload{}, ctx.Err()
	default:
	}

	resp := PopularTimesResponse{}

	busyness := 0.5 + s.rng.Float64() // venue-level multiplier
	for _, dayName := range weekdayNames {
		// Some days simply have no recorded data.
		if s.rng.Float64() < 0.1 {
			continue
		}
		dayFactor := busyness
		if dayName == "Friday" || dayName == "Saturday" {
			dayFactor *= 1.3
		}
		hours := make([]int, 24)
		for h := 0; h < 24; h++ {
			jitter := s.rng.Intn(21) - 10
			hours[h] = int(float64(barDayShape[h])*dayFactor) + jitter
		}
		resp.PopularTimes = append(resp.PopularTimes, DayData{Name: dayName, Data: hours})
	}

	if s.rng.Float64() < 0.6 {
		current := s.fake.IntBetween(0, 100)
		resp.CurrentPopularity = &current
	}

	if s.rng.Float64() < 0.7 {
		low := s.fake.IntBetween(15, 60)
		resp.TimeSpent = []int{low, low + s.fake.IntBetween(15, 60)}
	}

	if s.rng.Float64() < 0.2 {
		wait := s.fake.IntBetween(0, 25)
		resp.WaitTime = &wait
	}

	return NormalizePayload(resp), nil
}
