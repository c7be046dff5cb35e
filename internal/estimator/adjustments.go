package estimator

// adjustmentFromPrice converts a 0-4 price level into an additive capacity
// correction. A nil (unknown) price level contributes nothing.
func adjustmentFromPrice(priceLevel *int) int {
	if priceLevel == nil {
		return 0
	}
	return priceAdjustments[*priceLevel]
}

// adjustmentFromReviewVolume reflects that popular venues tend to be larger.
// Brackets are checked from the highest threshold down.
func adjustmentFromReviewVolume(reviewCount int) int {
	switch {
	case reviewCount > 1000:
		return 15
	case reviewCount > 500:
		return 10
	case reviewCount > 100:
		return 5
	case reviewCount < 10:
		return -10
	}
	return 0
}

// adjustmentFromPhotos: more photos might indicate a larger space to show.
func adjustmentFromPhotos(photoCount int) int {
	switch {
	case photoCount > 20:
		return 10
	case photoCount > 10:
		return 5
	}
	return 0
}
