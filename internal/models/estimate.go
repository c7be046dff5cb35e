package models

// CapacityEstimate is the fused output of the capacity heuristics. It is a
// value object: created per estimation call and never mutated afterwards.
type CapacityEstimate struct {
	PlaceID           string     `json:"place_id"`
	EstimatedCapacity int        `json:"estimated_capacity"`
	Confidence        Confidence `json:"confidence"`
	SignalsUsed       []string   `json:"signals_used"`
	Methodology       string     `json:"methodology"`
}
