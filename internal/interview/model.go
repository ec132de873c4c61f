package interview

// AnswerEvaluation is the per-answer scoring report. Score runs on a
// 0-10 scale capped above but not below; the length penalty can push a
// terse low-signal answer under zero.
type AnswerEvaluation struct {
	Score           float64  `json:"score"`
	OverallFeedback string   `json:"overall_feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Sentiment       string   `json:"sentiment"`
	WordCount       int      `json:"word_count"`
	HasExample      bool     `json:"has_example"`
	HasResult       bool     `json:"has_result"`
}

// ScoredAnswer is the slice of an evaluation the aggregator needs.
type ScoredAnswer struct {
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

// Summary rolls a whole interview session up to a 100-point scale.
type Summary struct {
	OverallScore      float64            `json:"overall_score"`
	AverageScore      float64            `json:"average_score"`
	Grade             string             `json:"grade"`
	TotalQuestions    int                `json:"total_questions"`
	QuestionsAnswered int                `json:"questions_answered"`
	Summary           string             `json:"summary"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}

// Question is one generated interview prompt.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}
