package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/analytics"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/collector"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/crowd"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/estimator"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/output"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/repositories"
	"github.com/f0x-sketch/venice-bar-analyzer/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
)

// Analyzer drives a collection pass end to end: fetch venues from the source,
// fuse capacity signals, derive crowd snapshots, and fan the results out to
// the configured sinks.
type Analyzer struct {
	Config    *models.Config
	Source    collector.VenueSource
	Estimator *estimator.Estimator

	output    output.Destination
	venueRepo repositories.VenueRepository
	snapRepo  repositories.SnapshotRepository
}

func New(cfg *models.Config) *Analyzer {
	return &Analyzer{
		Config:    cfg,
		Source:    collector.NewSyntheticSource(cfg),
		Estimator: estimator.New(),
	}
}

func (a *Analyzer) Run(ctx context.Context) error {
	a.output = a.determineOutputDestination()
	defer func() {
		if err := a.output.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	if a.Config.PostgresEnabled {
		pool, err := pgxpool.New(ctx, a.Config.Database.ConnString())
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pool.Close()
		a.venueRepo = postgres.NewVenueRepository(pool)
		a.snapRepo = postgres.NewSnapshotRepository(pool)
	}

	log.Printf("Analyzing the %s bar scene for %s", a.Config.CityName, a.targetDay())

	if err := a.collectOnce(ctx); err != nil {
		return err
	}
	if !a.Config.Continuous {
		return nil
	}

	ticker := time.NewTicker(a.Config.CollectionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := a.collectOnce(ctx); err != nil {
				log.Printf("Collection pass failed: %v", err)
			}
		}
	}
}

// targetDay resolves the configured weekday, falling back to today.
func (a *Analyzer) targetDay() time.Weekday {
	if day, ok := collector.ParseDayName(a.Config.Day); ok {
		return day
	}
	return time.Now().Weekday()
}

func (a *Analyzer) collectOnce(ctx context.Context) error {
	day := a.targetDay()
	venues, err := a.Source.Venues(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch venues: %w", err)
	}

	bar := progressbar.Default(int64(len(venues)), "analyzing venues")
	now := time.Now()

	reports := make([]models.VenueReport, 0, len(venues))
	for i := range venues {
		report := a.analyzeVenue(ctx, &venues[i], day, now)
		reports = append(reports, report)
		a.emitVenueEvents(report, day, now)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	a.emitSceneStats(analytics.SceneStats(reports), now)

	if a.venueRepo != nil {
		if err := a.persist(ctx, reports); err != nil {
			return fmt.Errorf("failed to persist collection pass: %w", err)
		}
	}

	log.Printf("Collection pass complete: %d venues analyzed for %s", len(reports), day)
	return nil
}

// analyzeVenue never fails: a source that cannot deliver popularity data just
// degrades the snapshot to defaults.
func (a *Analyzer) analyzeVenue(ctx context.Context, venue *models.Venue, day time.Weekday, now time.Time) models.VenueReport {
	reviews := make([]string, 0, len(venue.Reviews))
	for _, review := range venue.Reviews {
		reviews = append(reviews, review.Text)
	}

	estimate := a.Estimator.Estimate(estimator.SignalInputs{
		PlaceID:     venue.ID,
		Name:        venue.Name,
		Types:       venue.Types,
		Reviews:     reviews,
		PriceLevel:  venue.PriceLevel,
		ReviewCount: venue.ReviewCount,
		Rating:      venue.Rating,
		PhotoCount:  venue.PhotoCount,
	})

	payload, err := a.Source.Popularity(ctx, venue.ID)
	if err != nil {
		log.Printf("No popularity data for %s: %v", venue.Name, err)
		payload = models.PopularityPayload{PopularityByDay: models.PopularityCurve{}}
	}

	snapshot := crowd.Analyze(payload, day)
	snapshot.PlaceID = venue.ID
	snapshot.ObservedAt = now

	return models.VenueReport{Venue: *venue, Capacity: estimate, Crowd: snapshot}
}

func (a *Analyzer) emitVenueEvents(report models.VenueReport, day time.Weekday, now time.Time) {
	venue := report.Venue

	profile := VenueProfileEvent{
		BaseEvent:         BaseEvent{Timestamp: now.Unix(), EventType: "venue_profile"},
		PlaceID:           venue.ID,
		Name:              venue.Name,
		Lat:               venue.Location.Lat,
		Lng:               venue.Location.Lng,
		Rating:            venue.Rating,
		ReviewCount:       int32(venue.ReviewCount),
		PriceLevel:        toInt32(venue.PriceLevel),
		PhotoCount:        int32(venue.PhotoCount),
		EstimatedCapacity: int32(report.Capacity.EstimatedCapacity),
		Confidence:        string(report.Capacity.Confidence),
		SignalsUsed:       strings.Join(report.Capacity.SignalsUsed, ","),
		Methodology:       report.Capacity.Methodology,
	}
	a.writeEvent(TopicVenueProfiles, profile)

	snapshot := CrowdSnapshotEvent{
		BaseEvent:         BaseEvent{Timestamp: now.Unix(), EventType: "crowd_snapshot"},
		PlaceID:           venue.ID,
		Day:               day.String(),
		CurrentPopularity: toInt32(report.Crowd.CurrentPopularity),
		PeakHours:         joinHours(report.Crowd.PeakHours),
		BestTimeToVisit:   report.Crowd.BestTimeToVisit,
		AffluenceScore:    report.Crowd.AffluenceScore,
		TimeSpentMinutes:  toInt32(report.Crowd.TimeSpentMinutes),
		WaitTimeMinutes:   toInt32(report.Crowd.WaitTimeMinutes),
	}
	a.writeEvent(TopicCrowdSnapshots, snapshot)
}

func (a *Analyzer) emitSceneStats(stats analytics.SceneSummary, now time.Time) {
	a.writeEvent(TopicSceneStats, SceneStatsEvent{
		BaseEvent:      BaseEvent{Timestamp: now.Unix(), EventType: "scene_stats"},
		TotalVenues:    int32(stats.TotalVenues),
		AvgRating:      stats.AvgRating,
		AvgCapacity:    stats.AvgCapacity,
		AvgAffluence:   stats.AvgAffluence,
		BudgetVenues:   int32(stats.PriceDistribution["$"]),
		ModerateVenues: int32(stats.PriceDistribution["$$"]),
		UpscaleVenues:  int32(stats.PriceDistribution["$$$"]),
		LuxuryVenues:   int32(stats.PriceDistribution["$$$$"]),
	})
}

func (a *Analyzer) writeEvent(topic string, event interface{}) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
		return
	}
	if err := a.output.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to write message: %v", err)
	}
}

func (a *Analyzer) persist(ctx context.Context, reports []models.VenueReport) error {
	venues := make([]*models.Venue, 0, len(reports))
	estimates := make(map[string]models.CapacityEstimate, len(reports))
	snapshots := make([]*models.CrowdSnapshot, 0, len(reports))
	for i := range reports {
		venues = append(venues, &reports[i].Venue)
		estimates[reports[i].Venue.ID] = reports[i].Capacity
		snapshots = append(snapshots, &reports[i].Crowd)
	}

	if err := a.venueRepo.BulkUpsert(ctx, venues, estimates); err != nil {
		return err
	}
	return a.snapRepo.BulkInsert(ctx, snapshots)
}

func (a *Analyzer) determineOutputDestination() output.Destination {
	if a.Config.KafkaEnabled {
		kafkaOutput, err := output.NewKafkaOutput(a.Config)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		return kafkaOutput
	}
	if a.Config.OutputPath != "" {
		switch a.Config.OutputFormat {
		case "parquet":
			parquetOutput, err := output.NewParquetOutput(a.Config, GetSchema)
			if err != nil {
				log.Fatalf("Failed to create Parquet output: %s", err)
			}
			return parquetOutput
		case "json":
			return output.NewJSONOutput(a.Config.OutputPath, a.Config.OutputFolder)
		case "csv":
			return output.NewCSVOutput(a.Config.OutputPath, a.Config.OutputFolder)
		default:
			log.Fatalf("Unsupported output format: %s", a.Config.OutputFormat)
		}
	}
	return &output.ConsoleOutput{}
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	converted := int32(*v)
	return &converted
}

func joinHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, hour := range hours {
		parts[i] = strconv.Itoa(hour)
	}
	return strings.Join(parts, ",")
}
