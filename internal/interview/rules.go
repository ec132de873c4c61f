package interview

import "strings"

// signalSet carries the structural signals one answer produced. The
// strength and improvement rules below read it independently, in fixed
// order, so the output lists are reproducible.
type signalSet struct {
	Category   string
	Score      float64
	WordCount  int
	HasExample bool
	HasResult  bool
	HasNumbers bool
	Sentiment  string
}

type answerRule struct {
	applies func(signalSet) bool
	message string
}

var strengthRules = []answerRule{
	{func(s signalSet) bool { return s.WordCount >= 100 }, "Well-detailed response with good length"},
	{func(s signalSet) bool { return s.HasExample }, "Provided concrete examples from experience"},
	{func(s signalSet) bool { return s.HasResult }, "Mentioned outcomes and results"},
	{func(s signalSet) bool { return s.HasNumbers }, "Used quantifiable metrics"},
	{func(s signalSet) bool { return s.Sentiment == "positive" }, "Positive and confident tone"},
}

var improvementRules = []answerRule{
	{func(s signalSet) bool { return s.WordCount < 50 }, "Expand your answer with more details"},
	{func(s signalSet) bool { return !s.HasExample }, "Include specific examples from your experience"},
	{func(s signalSet) bool { return !s.HasResult }, "Discuss the outcomes and impact of your actions"},
	{func(s signalSet) bool { return !s.HasNumbers }, "Add quantifiable metrics where possible (e.g., '30% improvement')"},
	{func(s signalSet) bool { return strings.EqualFold(s.Category, "behavioral") && s.Score < 8 }, "Use the STAR method: Situation, Task, Action, Result"},
	{func(s signalSet) bool { return strings.EqualFold(s.Category, "technical") && s.Score < 8 }, "Include more technical details and terminology"},
}

func strengthsFor(sig signalSet) []string {
	out := applyRules(strengthRules, sig)
	if len(out) == 0 {
		return []string{"Answer provided"}
	}
	return out
}

func improvementsFor(sig signalSet) []string {
	out := applyRules(improvementRules, sig)
	if len(out) == 0 {
		return []string{"Continue practicing interview responses"}
	}
	return out
}

func applyRules(rules []answerRule, sig signalSet) []string {
	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.applies(sig) {
			out = append(out, rule.message)
		}
	}
	return out
}

func feedbackFor(score float64) string {
	switch {
	case score >= 8:
		return "Excellent answer! You provided a detailed, well-structured response with relevant examples."
	case score >= 6:
		return "Good answer with room for improvement. Consider adding more specific examples and details."
	case score >= 4:
		return "Acceptable answer, but needs more depth. Focus on providing concrete examples and outcomes."
	default:
		return "Needs significant improvement. Provide more detailed responses with specific examples."
	}
}
