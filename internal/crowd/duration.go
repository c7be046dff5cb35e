package crowd

import (
	"strconv"
	"strings"
)

// ParseVisitDuration turns free-form dwell strings like "45 min" or
// "30-60 min" into a minute count. Anything unparseable is simply no data.
func ParseVisitDuration(timeSpent string) (int, bool) {
	if timeSpent == "" {
		return 0, false
	}

	trimmed := strings.TrimSpace(strings.ReplaceAll(timeSpent, " min", ""))

	if strings.Contains(trimmed, "-") {
		parts := strings.SplitN(trimmed, "-", 2)
		low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, false
		}
		high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, false
		}
		return (low + high) / 2, true
	}

	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return minutes, true
}
