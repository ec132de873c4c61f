package ats

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildSuggestionsFullCascade(t *testing.T) {
	missing := []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8", "m9", "m10", "m11", "m12"}
	job := "We need experience with strong skills and a bachelor degree. Certified candidates preferred."
	resume := "short text with none of the expected sections"

	got := buildSuggestions(25, 30, missing, resume, job)
	want := []string{
		"Critical: Your resume has very low relevance to this job (Score: 25.0/100). Consider rewriting to highlight relevant experience.",
		"Add missing keywords: Your resume matches only 30.0% of job keywords. Incorporate more relevant terms.",
		"High-priority keywords to add: m1, m2, m3, m4, m5",
		"Add an 'Experience' section if you have relevant work history.",
		"Include your education qualifications prominently.",
		"Create a dedicated 'Skills' section listing technical and soft skills.",
		"Add any relevant certifications if you have them.",
		"Resume seems too short. Expand descriptions to 1-2 pages for better ATS parsing.",
		"Pro tip: Mirror the job description's language and terminology where truthful.",
		"Use standard section headings: Experience, Education, Skills, Certifications.",
		"Quantify achievements with metrics (e.g., 'Improved performance by 30%').",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cascade output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestBuildSuggestionsHighScore(t *testing.T) {
	missing := []string{"a", "b", "c", "d", "e", "f"}
	resume := strings.Repeat("experience education skills certified ", 20)

	got := buildSuggestions(82.5, 80.5, missing, resume, "any job text")

	if !strings.HasPrefix(got[0], "Excellent:") {
		t.Fatalf("first suggestion = %q, want Excellent band", got[0])
	}
	if got[1] != "Strong keyword alignment: 80.5% of job keywords are present in your resume." {
		t.Fatalf("match suggestion = %q", got[1])
	}
	if got[2] != "Consider adding these keywords: a, b, c" {
		t.Fatalf("missing suggestion = %q", got[2])
	}
	// Section, length rules stay silent; tips always close the list.
	if len(got) != 6 {
		t.Fatalf("expected 6 suggestions, got %d: %q", len(got), got)
	}
	if !strings.HasPrefix(got[3], "Pro tip:") {
		t.Fatalf("expected tips after rule output, got %q", got[3])
	}
}

func TestScoreBandBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{29.99, "Critical:"},
		{30, "Warning:"},
		{49.99, "Warning:"},
		{50, "Good:"},
		{69.99, "Good:"},
		{70, "Excellent:"},
	}
	for _, tc := range cases {
		msgs := fromScoreBand(suggestionInput{Score: tc.score})
		if len(msgs) != 1 || !strings.HasPrefix(msgs[0], tc.want) {
			t.Fatalf("score %v: got %q, want prefix %q", tc.score, msgs, tc.want)
		}
	}
}

func TestMatchBandBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{39.99, "Add missing keywords:"},
		{40, "Improve keyword density:"},
		{59.99, "Improve keyword density:"},
		{60, "Strong keyword alignment:"},
	}
	for _, tc := range cases {
		msgs := fromMatchBand(suggestionInput{MatchPct: tc.pct})
		if len(msgs) != 1 || !strings.HasPrefix(msgs[0], tc.want) {
			t.Fatalf("pct %v: got %q, want prefix %q", tc.pct, msgs, tc.want)
		}
	}
}

func TestMissingKeywordThresholds(t *testing.T) {
	five := []string{"a", "b", "c", "d", "e"}
	if msgs := fromMissingKeywords(suggestionInput{Missing: five}); msgs != nil {
		t.Fatalf("5 missing should be silent, got %q", msgs)
	}
	six := append(append([]string{}, five...), "f")
	msgs := fromMissingKeywords(suggestionInput{Missing: six})
	if len(msgs) != 1 || msgs[0] != "Consider adding these keywords: a, b, c" {
		t.Fatalf("6 missing: got %q", msgs)
	}
}

func TestFormatPct(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{50, "50.0"},
		{0, "0.0"},
		{45.45, "45.45"},
		{33.33, "33.33"},
		{100, "100.0"},
	}
	for _, tc := range cases {
		if got := formatPct(tc.in); got != tc.want {
			t.Fatalf("formatPct(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
