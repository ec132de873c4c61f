package interview

import (
	"context"
	"math"
	"regexp"
	"strings"

	"resume-coach/internal/nlp"
	"resume-coach/internal/shared/util"
)

const (
	minAnswerChars    = 10
	sentimentMaxRunes = 512
	maxScore          = 10.0
)

var numeralRe = regexp.MustCompile(`\d+`)

var (
	exampleCues = []string{
		"example", "instance", "time when", "project", "situation",
		"experience", "worked on", "developed", "implemented",
	}
	resultCues = []string{
		"result", "outcome", "achieved", "improved", "increased",
		"reduced", "successful", "delivered", "completed",
	}
	technicalTerms = []string{
		"algorithm", "database", "api", "framework",
		"architecture", "design", "code", "testing",
		"deployment", "optimization", "performance",
	}
	situationCues = []string{"situation", "time when", "faced", "encountered"}
	taskCues      = []string{"task", "goal", "objective", "needed to"}
	actionCues    = []string{"action", "did", "approach", "implemented", "decided"}
)

// Evaluator scores interview answers. The sentiment classifier is an
// optional collaborator: a failure downgrades the label to "neutral"
// instead of failing the evaluation.
type Evaluator struct {
	Sentiment nlp.SentimentClassifier
}

func NewEvaluator(sentiment nlp.SentimentClassifier) *Evaluator {
	return &Evaluator{Sentiment: sentiment}
}

// Evaluate scores one answer against structural signals and returns the
// full per-answer report. Answers under 10 trimmed characters skip the
// cascade entirely and get a fixed minimal result.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer, category, difficulty string) AnswerEvaluation {
	trimmed := strings.TrimSpace(answer)
	if len([]rune(trimmed)) < minAnswerChars {
		return AnswerEvaluation{
			Score:           2,
			OverallFeedback: "Answer is too short. Please provide a more detailed response.",
			Strengths:       []string{},
			Improvements: []string{
				"Provide more detail and elaboration",
				"Use specific examples to support your points",
				"Aim for at least 50-100 words",
			},
			Sentiment: "neutral",
			WordCount: len(strings.Fields(answer)),
		}
	}

	lower := strings.ToLower(answer)
	sig := signalSet{
		Category:   category,
		WordCount:  len(strings.Fields(answer)),
		HasExample: containsAnyCue(lower, exampleCues),
		HasResult:  containsAnyCue(lower, resultCues),
		HasNumbers: numeralRe.MatchString(answer),
		Sentiment:  e.classify(ctx, answer),
	}
	sig.Score = scoreAnswer(lower, sig)

	return AnswerEvaluation{
		Score:           sig.Score,
		OverallFeedback: feedbackFor(sig.Score),
		Strengths:       strengthsFor(sig),
		Improvements:    improvementsFor(sig),
		Sentiment:       sig.Sentiment,
		WordCount:       sig.WordCount,
		HasExample:      sig.HasExample,
		HasResult:       sig.HasResult,
	}
}

func (e *Evaluator) classify(ctx context.Context, answer string) string {
	if e.Sentiment == nil {
		return "neutral"
	}
	label, err := e.Sentiment.Classify(ctx, util.TruncateRunes(answer, sentimentMaxRunes))
	if err != nil {
		return "neutral"
	}
	return label
}

// scoreAnswer accumulates additive adjustments over a 5.0 base, rounds
// to one decimal, and caps at 10. There is no lower cap.
func scoreAnswer(lowerAnswer string, sig signalSet) float64 {
	score := 5.0

	switch {
	case sig.WordCount >= 150:
		score += 2.0
	case sig.WordCount >= 100:
		score += 1.5
	case sig.WordCount >= 50:
		score += 1.0
	case sig.WordCount < 30:
		score -= 1.0
	}

	if sig.HasExample {
		score += 1.5
	}
	if sig.HasResult {
		score += 1.0
	}
	if sig.HasNumbers {
		score += 0.5
	}

	switch strings.ToLower(sig.Category) {
	case "technical":
		bonus := float64(countCues(lowerAnswer, technicalTerms)) * 0.3
		if bonus > 1.5 {
			bonus = 1.5
		}
		score += bonus
	case "behavioral":
		star := 0
		if containsAnyCue(lowerAnswer, situationCues) {
			star++
		}
		if containsAnyCue(lowerAnswer, taskCues) {
			star++
		}
		if containsAnyCue(lowerAnswer, actionCues) {
			star++
		}
		if sig.HasResult {
			star++
		}
		score += float64(star) * 0.5
	}

	final := round1(score)
	if final > maxScore {
		final = maxScore
	}
	return final
}

func containsAnyCue(haystack string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(haystack, cue) {
			return true
		}
	}
	return false
}

func countCues(haystack string, cues []string) int {
	n := 0
	for _, cue := range cues {
		if strings.Contains(haystack, cue) {
			n++
		}
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
