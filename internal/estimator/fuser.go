package estimator

import (
	"fmt"
	"strings"

	"github.com/f0x-sketch/venice-bar-analyzer/internal/models"
)

// SignalInputs carries every raw signal the fuser knows how to use. Optional
// fields are pointers so that "absent" stays distinct from a literal zero.
type SignalInputs struct {
	PlaceID     string
	Name        string
	Types       []string
	Reviews     []string
	PriceLevel  *int
	ReviewCount int
	Rating      *float64
	PhotoCount  int
}

// Estimator fuses the independent capacity heuristics into one estimate.
// No venue or occupancy API reports real capacity, so everything here is
// best-effort: the estimator never fails, it only loses confidence.
type Estimator struct{}

func New() *Estimator {
	return &Estimator{}
}

// Estimate combines review, category, price, volume and photo signals into a
// single bounded capacity figure with a confidence label.
func (e *Estimator) Estimate(in SignalInputs) models.CapacityEstimate {
	var estimates []float64
	var signalsUsed []string

	if reviewEstimate, ok := e.estimateFromReviews(in.Reviews); ok {
		estimates = append(estimates, float64(reviewEstimate))
		signalsUsed = append(signalsUsed, models.SignalReviewText)
	}

	if categoryEstimate, ok := e.estimateFromCategory(in.Types); ok {
		estimates = append(estimates, float64(categoryEstimate))
		signalsUsed = append(signalsUsed, models.SignalCategoryBaseline)
	}

	priceAdjustment := adjustmentFromPrice(in.PriceLevel)
	volumeAdjustment := adjustmentFromReviewVolume(in.ReviewCount)
	photoAdjustment := adjustmentFromPhotos(in.PhotoCount)

	var base float64
	switch {
	case len(estimates) == 0:
		base = float64(categoryBaselines["default"])
		signalsUsed = append(signalsUsed, models.SignalDefaultFallback)
	case len(estimates) == 1:
		base = estimates[0]
	default:
		// Review evidence is weighted 1.5x everything else.
		var weighted, totalWeight float64
		for i, estimate := range estimates {
			weight := 0.4
			if signalsUsed[i] == models.SignalReviewText {
				weight = 0.6
			}
			weighted += estimate * weight
			totalWeight += weight
		}
		base = weighted / totalWeight
	}

	final := int(base + float64(priceAdjustment+volumeAdjustment+photoAdjustment))
	if final < minCapacity {
		final = minCapacity
	}
	if final > maxCapacity {
		final = maxCapacity
	}

	return models.CapacityEstimate{
		PlaceID:           in.PlaceID,
		EstimatedCapacity: final,
		Confidence:        confidenceFor(signalsUsed, in.ReviewCount),
		SignalsUsed:       signalsUsed,
		Methodology:       describeMethodology(signalsUsed, final),
	}
}

// confidenceFor maps the evidence that went into an estimate to a coarse
// trust label. The scoring is monotone: more evidence never lowers it.
func confidenceFor(signalsUsed []string, reviewCount int) models.Confidence {
	score := len(signalsUsed) * 20

	for _, signal := range signalsUsed {
		if signal == models.SignalReviewText {
			score += 30
			break
		}
	}

	if reviewCount > 100 {
		score += 20
	} else if reviewCount > 20 {
		score += 10
	}

	switch {
	case score >= 70:
		return models.ConfidenceHigh
	case score >= 40:
		return models.ConfidenceMedium
	}
	return models.ConfidenceLow
}

func describeMethodology(signalsUsed []string, estimate int) string {
	var parts []string
	for _, signal := range signalsUsed {
		switch signal {
		case models.SignalReviewText:
			parts = append(parts, "extracted explicit capacity mentions and size keywords from reviews")
		case models.SignalCategoryBaseline:
			parts = append(parts, "applied category-based baseline capacity")
		case models.SignalDefaultFallback:
			parts = append(parts, "used default baseline (limited data available)")
		}
	}

	return fmt.Sprintf("Estimated %d people capacity based on: %s. Adjusted for price level, popularity, and available photos.",
		estimate, strings.Join(parts, "; "))
}
