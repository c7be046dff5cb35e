package models

// Confidence is the coarse trust label attached to a capacity estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	SignalReviewText       = "review_text_analysis"
	SignalCategoryBaseline = "category_baseline"
	SignalDefaultFallback  = "default_fallback"
)

const (
	PriceLevelFree          = 0
	PriceLevelInexpensive   = 1
	PriceLevelModerate      = 2
	PriceLevelExpensive     = 3
	PriceLevelVeryExpensive = 4
)
