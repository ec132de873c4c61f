package ats

import (
	"math"

	"resume-coach/internal/similarity"
	"resume-coach/internal/textutil"
)

const (
	// comparisonTopN widens keyword extraction beyond the generic default
	// so the overlap statistics have enough support on long documents.
	comparisonTopN = 100

	missingLimit = 15
	matchedLimit = 20

	// ATSScore weighting: semantic similarity carries more signal than
	// raw keyword overlap.
	similarityWeight = 60
	keywordWeight    = 0.4
)

// Optimize analyzes how well a resume matches a job description and
// returns the score breakdown plus actionable suggestions. It never
// fails: degenerate input degrades the similarity term to zero.
func Optimize(resumeText, jobText string) Result {
	resumeKeywords := textutil.ExtractKeywords(resumeText, comparisonTopN)
	jobKeywords := textutil.ExtractKeywords(jobText, comparisonTopN)

	tfidfSim := similarity.TFIDF(resumeText, jobText)
	matchPct := keywordMatchPct(resumeKeywords, jobKeywords)

	// Missing keywords keep the job's frequency-rank order, matched
	// keywords keep the resume's, so repeated calls agree exactly.
	resumeSet := toSet(resumeKeywords)
	jobSet := toSet(jobKeywords)
	missing := without(jobKeywords, resumeSet, missingLimit)
	matched := within(resumeKeywords, jobSet, matchedLimit)

	score := round2(tfidfSim*similarityWeight + matchPct*keywordWeight)

	return Result{
		ATSScore:           score,
		KeywordMatchPct:    matchPct,
		MissingKeywords:    missing,
		MatchedKeywords:    matched,
		Suggestions:        buildSuggestions(score, matchPct, missing, resumeText, jobText),
		TFIDFSimilarity:    round4(tfidfSim),
		ResumeKeywordCount: len(resumeKeywords),
		JobKeywordCount:    len(jobKeywords),
	}
}

// keywordMatchPct is the share of job keywords present in the resume,
// as a percentage rounded to 2 decimals. Zero when the job yields no
// keywords at all.
func keywordMatchPct(resumeKeywords, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 0.0
	}
	resumeSet := toSet(resumeKeywords)
	matched := 0
	for _, kw := range jobKeywords {
		if resumeSet[kw] {
			matched++
		}
	}
	return round2(float64(matched) / float64(len(jobKeywords)) * 100)
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// without returns the words absent from exclude, in input order, capped.
func without(words []string, exclude map[string]bool, limit int) []string {
	out := make([]string, 0, limit)
	for _, w := range words {
		if exclude[w] {
			continue
		}
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}

// within returns the words present in include, in input order, capped.
func within(words []string, include map[string]bool, limit int) []string {
	out := make([]string, 0, limit)
	for _, w := range words {
		if !include[w] {
			continue
		}
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
