package interview

import (
	"reflect"
	"testing"
)

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)

	if got.OverallScore != 0 || got.AverageScore != 0 {
		t.Fatalf("expected zero scores, got %+v", got)
	}
	if got.Grade != "F" {
		t.Fatalf("grade = %q, want F", got.Grade)
	}
	if got.TotalQuestions != 0 || got.QuestionsAnswered != 0 {
		t.Fatalf("expected zero counts, got %+v", got)
	}
	if got.Summary != "No questions answered" {
		t.Fatalf("summary = %q", got.Summary)
	}
	if len(got.CategoryBreakdown) != 0 {
		t.Fatalf("breakdown = %v, want empty", got.CategoryBreakdown)
	}
}

func TestAggregateSession(t *testing.T) {
	answers := []ScoredAnswer{
		{Score: 8.5, Category: "Introduction"},
		{Score: 7.5, Category: "Technical"},
		{Score: 9.0, Category: "Behavioral"},
		{Score: 6.5, Category: "Technical"},
		{Score: 8.0, Category: "Motivation"},
	}
	got := Aggregate(answers)

	if got.OverallScore != 79.0 {
		t.Fatalf("overall = %v, want 79.0", got.OverallScore)
	}
	if got.AverageScore != 7.9 {
		t.Fatalf("average = %v, want 7.9", got.AverageScore)
	}
	if got.Grade != "B" {
		t.Fatalf("grade = %q, want B", got.Grade)
	}
	if got.TotalQuestions != 5 || got.QuestionsAnswered != 5 {
		t.Fatalf("counts = %d/%d, want 5/5", got.QuestionsAnswered, got.TotalQuestions)
	}
	wantBreakdown := map[string]float64{
		"Introduction": 8.5,
		"Technical":    7.0,
		"Behavioral":   9.0,
		"Motivation":   8.0,
	}
	if !reflect.DeepEqual(got.CategoryBreakdown, wantBreakdown) {
		t.Fatalf("breakdown = %v, want %v", got.CategoryBreakdown, wantBreakdown)
	}
}

func TestAggregateMidBoundaryGrade(t *testing.T) {
	// Average of exactly 5.0 lands on the 50-point overall, below the
	// lowest lettered band.
	got := Aggregate([]ScoredAnswer{
		{Score: 4, Category: "Technical"},
		{Score: 6, Category: "Behavioral"},
	})
	if got.OverallScore != 50.0 {
		t.Fatalf("overall = %v, want 50.0", got.OverallScore)
	}
	if got.AverageScore != 5.0 {
		t.Fatalf("average = %v, want 5.0", got.AverageScore)
	}
	if got.Grade != "D" {
		t.Fatalf("grade = %q, want D", got.Grade)
	}
}

func TestAggregateGradeBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{9.0, "A+"},
		{8.5, "A"},
		{8.0, "B+"},
		{7.5, "B"},
		{7.0, "C+"},
		{6.0, "C"},
		{5.9, "D"},
		{0, "D"},
	}
	for _, tc := range cases {
		got := Aggregate([]ScoredAnswer{{Score: tc.score}})
		if got.Grade != tc.want {
			t.Fatalf("score %v: grade = %q, want %q", tc.score, got.Grade, tc.want)
		}
	}
}

func TestAggregateCountsOnlyAnswered(t *testing.T) {
	got := Aggregate([]ScoredAnswer{
		{Score: 8, Category: "Technical"},
		{Score: 0, Category: "Technical"},
	})
	if got.TotalQuestions != 2 {
		t.Fatalf("total = %d, want 2", got.TotalQuestions)
	}
	if got.QuestionsAnswered != 1 {
		t.Fatalf("answered = %d, want 1", got.QuestionsAnswered)
	}
}

func TestAggregateDefaultCategory(t *testing.T) {
	got := Aggregate([]ScoredAnswer{{Score: 6}})
	if _, ok := got.CategoryBreakdown["General"]; !ok {
		t.Fatalf("breakdown = %v, want General bucket", got.CategoryBreakdown)
	}
}
