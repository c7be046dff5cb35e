package models

// VenueReport bundles everything the analyzer derives for one venue. It is the
// record handed to output sinks, analytics and persistence.
type VenueReport struct {
	Venue    Venue            `json:"venue"`
	Capacity CapacityEstimate `json:"capacity"`
	Crowd    CrowdSnapshot    `json:"crowd"`
}
