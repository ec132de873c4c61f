package interview

// Aggregate rolls per-answer scores up into a session summary on a
// 100-point scale with a letter grade and per-category averages.
func Aggregate(answers []ScoredAnswer) Summary {
	if len(answers) == 0 {
		return Summary{
			OverallScore:      0,
			AverageScore:      0,
			Grade:             "F",
			TotalQuestions:    0,
			QuestionsAnswered: 0,
			Summary:           "No questions answered",
			CategoryBreakdown: map[string]float64{},
		}
	}

	total := 0.0
	answered := 0
	for _, a := range answers {
		total += a.Score
		if a.Score > 0 {
			answered++
		}
	}
	average := total / float64(len(answers))
	overall := round1(average * 10)

	return Summary{
		OverallScore:      overall,
		AverageScore:      round2(average),
		Grade:             gradeFor(overall),
		TotalQuestions:    len(answers),
		QuestionsAnswered: answered,
		Summary:           summaryFor(overall),
		CategoryBreakdown: categoryBreakdown(answers),
	}
}

func gradeFor(overall float64) string {
	switch {
	case overall >= 90:
		return "A+"
	case overall >= 85:
		return "A"
	case overall >= 80:
		return "B+"
	case overall >= 75:
		return "B"
	case overall >= 70:
		return "C+"
	case overall >= 60:
		return "C"
	default:
		return "D"
	}
}

func summaryFor(overall float64) string {
	switch {
	case overall >= 80:
		return "Outstanding performance! You demonstrated strong communication skills and provided excellent, detailed responses."
	case overall >= 70:
		return "Good performance overall. You showed solid understanding but could improve in providing more specific examples."
	case overall >= 60:
		return "Decent performance with room for improvement. Focus on structuring answers better and adding more detail."
	default:
		return "Needs improvement. Practice providing more detailed, structured responses with concrete examples."
	}
}

func categoryBreakdown(answers []ScoredAnswer) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range answers {
		category := a.Category
		if category == "" {
			category = "General"
		}
		sums[category] += a.Score
		counts[category]++
	}
	out := make(map[string]float64, len(sums))
	for category, sum := range sums {
		out[category] = round2(sum / float64(counts[category]))
	}
	return out
}
