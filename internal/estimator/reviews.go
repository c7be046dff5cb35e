package estimator

import (
	"strconv"
	"strings"
)

// estimateFromReviews extracts capacity hints from review text. Explicit
// numeric mentions always dominate keyword hits; the bool is false when the
// reviews carry no usable signal at all.
func (e *Estimator) estimateFromReviews(reviews []string) (int, bool) {
	if len(reviews) == 0 {
		return 0, false
	}

	var explicitCapacities []int
	var sizeScores []int

	for _, review := range reviews {
		text := strings.ToLower(review)
		if strings.TrimSpace(text) == "" {
			continue
		}

		for _, pattern := range capacityPatterns {
			for _, match := range pattern.FindAllStringSubmatch(text, -1) {
				capacity, err := strconv.Atoi(match[1])
				if err != nil {
					continue
				}
				if capacity >= minPlausibleMention && capacity <= maxPlausibleMention {
					explicitCapacities = append(explicitCapacities, capacity)
				}
			}
		}

		for keyword, capacity := range sizeKeywords {
			if strings.Contains(text, keyword) {
				sizeScores = append(sizeScores, capacity)
			}
		}
	}

	if len(explicitCapacities) > 0 {
		return intMean(explicitCapacities), true
	}
	if len(sizeScores) > 0 {
		return intMean(sizeScores), true
	}
	return 0, false
}

func intMean(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}
