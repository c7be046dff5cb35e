package estimator

// estimateFromCategory returns the baseline capacity for the first tag that
// maps to a known category. Tags that match nothing still yield the default
// baseline; only an empty tag list means no signal.
func (e *Estimator) estimateFromCategory(types []string) (int, bool) {
	if len(types) == 0 {
		return 0, false
	}

	for _, t := range types {
		if canonical, ok := typeAliases[t]; ok {
			return categoryBaselines[canonical], true
		}
		if baseline, ok := categoryBaselines[t]; ok {
			return baseline, true
		}
	}
	return categoryBaselines["default"], true
}
