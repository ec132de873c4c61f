package ats

// Result is the full ATS compatibility report for one resume/job pair.
// ATSScore is a weighted blend, not a probability; it is reported as
// computed and can drift past its nominal bounds on pathological input.
type Result struct {
	ATSScore           float64  `json:"ats_score"`
	KeywordMatchPct    float64  `json:"keyword_match_percentage"`
	MissingKeywords    []string `json:"missing_keywords"`
	MatchedKeywords    []string `json:"matched_keywords"`
	Suggestions        []string `json:"suggestions"`
	TFIDFSimilarity    float64  `json:"tfidf_similarity"`
	ResumeKeywordCount int      `json:"resume_keyword_count"`
	JobKeywordCount    int      `json:"job_keyword_count"`
}
