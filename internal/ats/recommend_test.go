package ats

import "testing"

func TestRecommendation(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Excellent Match"},
		{80, "Excellent Match"},
		{79.99, "Strong Match"},
		{70, "Strong Match"},
		{60, "Good Match"},
		{50, "Moderate Match"},
		{40, "Fair Match"},
		{39.99, "Weak Match"},
		{0, "Weak Match"},
	}
	for _, tc := range cases {
		if got := Recommendation(tc.score); got != tc.want {
			t.Fatalf("Recommendation(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestConfidence(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{75, 1.0},
		{60, 0.9},
		{90, 0.9},
		{0, 0.5},
		{100, 0.83},
	}
	for _, tc := range cases {
		if got := Confidence(tc.score); got != tc.want {
			t.Fatalf("Confidence(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
