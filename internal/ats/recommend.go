package ats

import "math"

// Recommendation buckets a 0-100 match score into a coarse verdict label.
func Recommendation(score float64) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 70:
		return "Strong Match"
	case score >= 60:
		return "Good Match"
	case score >= 50:
		return "Moderate Match"
	case score >= 40:
		return "Fair Match"
	default:
		return "Weak Match"
	}
}

// Confidence estimates score reliability on a 0.5-1.0 scale, highest
// near the calibration midpoint of 75.
func Confidence(score float64) float64 {
	c := 1.0 - math.Abs(score-75.0)/150.0
	if c < 0.5 {
		c = 0.5
	}
	return round2(c)
}
