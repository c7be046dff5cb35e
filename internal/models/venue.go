package models

type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Location    Location `json:"location"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount int      `json:"review_count"`
	PriceLevel  *int     `json:"price_level,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Types       []string `json:"types"`
	PhotoCount  int      `json:"photo_count"`
	Reviews     []Review `json:"reviews,omitempty"`
}
