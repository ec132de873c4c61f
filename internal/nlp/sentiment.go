package nlp

import (
	"context"
	"strings"
	"unicode"
)

// LexiconClassifier is a word-list sentiment classifier. It counts positive
// and negative cue words and returns whichever dominates, or "neutral" on a
// tie or when neither appears.
type LexiconClassifier struct{}

var positiveWords = map[string]bool{
	"achieved": true, "improved": true, "successful": true, "success": true,
	"excellent": true, "great": true, "good": true, "strong": true,
	"confident": true, "passionate": true, "enjoy": true, "enjoyed": true,
	"love": true, "excited": true, "proud": true, "effective": true,
	"efficient": true, "delivered": true, "exceeded": true, "won": true,
	"growth": true, "positive": true, "best": true, "happy": true,
	"accomplished": true, "optimized": true, "increased": true,
}

var negativeWords = map[string]bool{
	"failed": true, "failure": true, "bad": true, "worst": true,
	"hate": true, "hated": true, "difficult": true, "problem": true,
	"problems": true, "struggle": true, "struggled": true, "blame": true,
	"blamed": true, "angry": true, "frustrated": true, "frustrating": true,
	"terrible": true, "awful": true, "negative": true, "wrong": true,
	"mistake": true, "mistakes": true, "lost": true, "worse": true,
	"impossible": true, "quit": true, "stress": true, "stressed": true,
}

// Classify labels text by comparing positive and negative cue word counts.
func (LexiconClassifier) Classify(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pos, neg := 0, 0
	for _, field := range strings.Fields(strings.ToLower(text)) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if positiveWords[word] {
			pos++
		}
		if negativeWords[word] {
			neg++
		}
	}

	switch {
	case pos > neg:
		return "positive", nil
	case neg > pos:
		return "negative", nil
	default:
		return "neutral", nil
	}
}
