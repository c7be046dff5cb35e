package estimator

import "regexp"

const defaultBaseline = 35

var (
	// Base capacity by venue category.
	categoryBaselines = map[string]int{
		"wine_bar":     25,
		"cocktail_bar": 35,
		"pub":          60,
		"night_club":   150,
		"lounge":       40,
		"beer_bar":     50,
		"tapas_bar":    35,
		"sports_bar":   80,
		"hotel_bar":    50,
		"rooftop_bar":  45,
		"dive_bar":     30,
		"speakeasy":    25,
		"default":      defaultBaseline,
	}

	// Provider place types mapped onto our categories.
	typeAliases = map[string]string{
		"wine_bar":   "wine_bar",
		"bar":        "cocktail_bar",
		"pub":        "pub",
		"night_club": "night_club",
		"lounge":     "lounge",
		"sports_bar": "sports_bar",
	}

	// Size descriptors that show up in review text.
	sizeKeywords = map[string]int{
		"tiny": 15, "very small": 15, "cramped": 20,
		"small": 25, "cozy": 30, "intimate": 30,
		"medium": 45, "moderate": 45, "average": 45,
		"large": 70, "spacious": 75, "big": 75,
		"huge": 120, "massive": 150, "enormous": 200,
	}

	// Explicit capacity mentions, each with one numeric capture group.
	capacityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:seats?|places?|spots?|tables?)`),
		regexp.MustCompile(`(?:fits?|holds?|capacity\s+(?:of|for)?)\s+(\d+)`),
		regexp.MustCompile(`(\d+)\s*(?:person|people|pax|guests?)\s*(?:max|maximum|capacity)`),
	}

	// Higher price tiers correlate with larger, more upscale rooms.
	priceAdjustments = map[int]int{
		0: -5,
		1: -5,
		2: 0,
		3: 10,
		4: 20,
	}
)

// Explicit mentions outside this range are treated as noise, not signal.
const (
	minPlausibleMention = 5
	maxPlausibleMention = 500
)

// Hard bounds on any fused estimate.
const (
	minCapacity = 10
	maxCapacity = 500
)
