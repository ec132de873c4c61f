package ats

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const shortResumeChars = 500

type suggestionInput struct {
	Score      float64
	MatchPct   float64
	Missing    []string
	ResumeText string
	JobText    string
}

// buildSuggestions runs a fixed cascade of independent rules. Each rule
// contributes zero or more messages; the cascade order is part of the
// output contract, so callers see suggestions in a reproducible sequence.
func buildSuggestions(score, matchPct float64, missing []string, resumeText, jobText string) []string {
	in := suggestionInput{
		Score:      score,
		MatchPct:   matchPct,
		Missing:    missing,
		ResumeText: resumeText,
		JobText:    jobText,
	}

	out := make([]string, 0, 10)
	rules := []func(suggestionInput) []string{
		fromScoreBand,
		fromMatchBand,
		fromMissingKeywords,
		fromSectionMarkers,
		fromResumeLength,
		fromGenericTips,
	}
	for _, rule := range rules {
		out = append(out, rule(in)...)
	}
	return out
}

func fromScoreBand(in suggestionInput) []string {
	switch {
	case in.Score < 30:
		return []string{fmt.Sprintf("Critical: Your resume has very low relevance to this job (Score: %.1f/100). Consider rewriting to highlight relevant experience.", in.Score)}
	case in.Score < 50:
		return []string{fmt.Sprintf("Warning: Resume relevance is below average (Score: %.1f/100). Add more job-specific keywords and skills.", in.Score)}
	case in.Score < 70:
		return []string{fmt.Sprintf("Good: Resume is reasonably matched (Score: %.1f/100). Minor improvements can boost ATS score.", in.Score)}
	default:
		return []string{fmt.Sprintf("Excellent: Resume is well-optimized for this job description (Score: %.1f/100).", in.Score)}
	}
}

func fromMatchBand(in suggestionInput) []string {
	pct := formatPct(in.MatchPct)
	switch {
	case in.MatchPct < 40:
		return []string{fmt.Sprintf("Add missing keywords: Your resume matches only %s%% of job keywords. Incorporate more relevant terms.", pct)}
	case in.MatchPct < 60:
		return []string{fmt.Sprintf("Improve keyword density: %s%% match is decent but could be better. Add more technical skills and qualifications.", pct)}
	default:
		return []string{fmt.Sprintf("Strong keyword alignment: %s%% of job keywords are present in your resume.", pct)}
	}
}

func fromMissingKeywords(in suggestionInput) []string {
	switch {
	case len(in.Missing) > 10:
		return []string{"High-priority keywords to add: " + strings.Join(in.Missing[:5], ", ")}
	case len(in.Missing) > 5:
		return []string{"Consider adding these keywords: " + strings.Join(in.Missing[:3], ", ")}
	default:
		return nil
	}
}

// fromSectionMarkers flags resume sections the job asks about but the
// resume never mentions. Matching is plain substring on lowercased text.
func fromSectionMarkers(in suggestionInput) []string {
	resume := strings.ToLower(in.ResumeText)
	job := strings.ToLower(in.JobText)

	var out []string
	if strings.Contains(job, "experience") && !strings.Contains(resume, "experience") {
		out = append(out, "Add an 'Experience' section if you have relevant work history.")
	}
	if containsAny(job, "degree", "bachelor", "master", "education") && !strings.Contains(resume, "education") {
		out = append(out, "Include your education qualifications prominently.")
	}
	if strings.Contains(job, "skills") && !strings.Contains(resume, "skills") {
		out = append(out, "Create a dedicated 'Skills' section listing technical and soft skills.")
	}
	if containsAny(job, "certification", "certified") && !containsAny(resume, "certification", "certified") {
		out = append(out, "Add any relevant certifications if you have them.")
	}
	return out
}

func fromResumeLength(in suggestionInput) []string {
	if utf8.RuneCountInString(in.ResumeText) < shortResumeChars {
		return []string{"Resume seems too short. Expand descriptions to 1-2 pages for better ATS parsing."}
	}
	return nil
}

func fromGenericTips(suggestionInput) []string {
	return []string{
		"Pro tip: Mirror the job description's language and terminology where truthful.",
		"Use standard section headings: Experience, Education, Skills, Certifications.",
		"Quantify achievements with metrics (e.g., 'Improved performance by 30%').",
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// formatPct renders a percentage with the shortest decimal form that
// still carries at least one fractional digit, so 50 reads "50.0" and
// 45.45 reads "45.45".
func formatPct(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
