package estimator

import "testing"

func TestEstimateFromCategory(t *testing.T) {
	e := New()
	tests := []struct {
		name  string
		types []string
		want  int
		ok    bool
	}{
		{"empty types", nil, 0, false},
		{"provider alias", []string{"bar"}, 35, true},
		{"direct category", []string{"speakeasy"}, 25, true},
		{"skips unknown tags", []string{"establishment", "pub"}, 60, true},
		{"all unknown yields default", []string{"establishment", "point_of_interest"}, 35, true},
		{"first match wins", []string{"night_club", "wine_bar"}, 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.estimateFromCategory(tt.types)
			if ok != tt.ok || got != tt.want {
				t.Errorf("estimateFromCategory(%v) = (%d, %v), want (%d, %v)",
					tt.types, got, ok, tt.want, tt.ok)
			}
		})
	}
}
