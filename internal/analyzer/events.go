package analyzer

import (
	"fmt"

	"github.com/xitongsys/parquet-go/schema"
)

const (
	TopicVenueProfiles  = "venue_profile_events"
	TopicCrowdSnapshots = "crowd_snapshot_events"
	TopicSceneStats     = "scene_stats_events"
)

type BaseEvent struct {
	Timestamp int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// VenueProfileEvent carries a venue's identity plus its fused capacity
// estimate. List-valued fields are flattened to comma-joined strings so the
// same shape serves JSON, CSV and parquet sinks.
type VenueProfileEvent struct {
	BaseEvent
	PlaceID           string   `json:"placeId" parquet:"name=placeId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name              string   `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Lat               float64  `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lng               float64  `json:"lng" parquet:"name=lng,type=DOUBLE"`
	Rating            *float64 `json:"rating,omitempty" parquet:"name=rating,type=DOUBLE,repetitiontype=OPTIONAL"`
	ReviewCount       int32    `json:"reviewCount" parquet:"name=reviewCount,type=INT32"`
	PriceLevel        *int32   `json:"priceLevel,omitempty" parquet:"name=priceLevel,type=INT32,repetitiontype=OPTIONAL"`
	PhotoCount        int32    `json:"photoCount" parquet:"name=photoCount,type=INT32"`
	EstimatedCapacity int32    `json:"estimatedCapacity" parquet:"name=estimatedCapacity,type=INT32"`
	Confidence        string   `json:"confidence" parquet:"name=confidence,type=BYTE_ARRAY,convertedtype=UTF8"`
	SignalsUsed       string   `json:"signalsUsed" parquet:"name=signalsUsed,type=BYTE_ARRAY,convertedtype=UTF8"`
	Methodology       string   `json:"methodology" parquet:"name=methodology,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// CrowdSnapshotEvent is one venue's crowd picture for the analyzed day.
type CrowdSnapshotEvent struct {
	BaseEvent
	PlaceID           string  `json:"placeId" parquet:"name=placeId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Day               string  `json:"day" parquet:"name=day,type=BYTE_ARRAY,convertedtype=UTF8"`
	CurrentPopularity *int32  `json:"currentPopularity,omitempty" parquet:"name=currentPopularity,type=INT32,repetitiontype=OPTIONAL"`
	PeakHours         string  `json:"peakHours" parquet:"name=peakHours,type=BYTE_ARRAY,convertedtype=UTF8"`
	BestTimeToVisit   string  `json:"bestTimeToVisit" parquet:"name=bestTimeToVisit,type=BYTE_ARRAY,convertedtype=UTF8"`
	AffluenceScore    float64 `json:"affluenceScore" parquet:"name=affluenceScore,type=DOUBLE"`
	TimeSpentMinutes  *int32  `json:"timeSpentMinutes,omitempty" parquet:"name=timeSpentMinutes,type=INT32,repetitiontype=OPTIONAL"`
	WaitTimeMinutes   *int32  `json:"waitTimeMinutes,omitempty" parquet:"name=waitTimeMinutes,type=INT32,repetitiontype=OPTIONAL"`
}

// SceneStatsEvent summarizes a whole collection pass.
type SceneStatsEvent struct {
	BaseEvent
	TotalVenues    int32   `json:"totalVenues" parquet:"name=totalVenues,type=INT32"`
	AvgRating      float64 `json:"avgRating" parquet:"name=avgRating,type=DOUBLE"`
	AvgCapacity    float64 `json:"avgCapacity" parquet:"name=avgCapacity,type=DOUBLE"`
	AvgAffluence   float64 `json:"avgAffluence" parquet:"name=avgAffluence,type=DOUBLE"`
	BudgetVenues   int32   `json:"budgetVenues" parquet:"name=budgetVenues,type=INT32"`
	ModerateVenues int32   `json:"moderateVenues" parquet:"name=moderateVenues,type=INT32"`
	UpscaleVenues  int32   `json:"upscaleVenues" parquet:"name=upscaleVenues,type=INT32"`
	LuxuryVenues   int32   `json:"luxuryVenues" parquet:"name=luxuryVenues,type=INT32"`
}

// GetSchema maps a topic to the parquet schema of its event struct.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	switch topic {
	case TopicVenueProfiles:
		return schema.NewSchemaHandlerFromStruct(new(VenueProfileEvent))
	case TopicCrowdSnapshots:
		return schema.NewSchemaHandlerFromStruct(new(CrowdSnapshotEvent))
	case TopicSceneStats:
		return schema.NewSchemaHandlerFromStruct(new(SceneStatsEvent))
	default:
		return nil, fmt.Errorf("unknown event type: %s", topic)
	}
}
