package crowd

import "testing"

func TestParseVisitDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"30-60 min", 45, true},
		{"45 min", 45, true},
		{"20-40", 30, true},
		{"90", 90, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"a-b min", 0, false},
		{"30-x min", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseVisitDuration(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseVisitDuration(%q) = (%d, %v), want (%d, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
