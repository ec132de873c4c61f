package nlp

import (
	"context"
	"testing"
)

func TestRuleRecognizerCityState(t *testing.T) {
	entities, err := RuleRecognizer{}.Entities(context.Background(), "Location: Austin, TX")
	if err != nil {
		t.Fatalf("Entities: %v", err)
	}
	var gpe []string
	for _, e := range entities {
		if e.Label == "GPE" {
			gpe = append(gpe, e.Text)
		}
	}
	if len(gpe) < 2 {
		t.Fatalf("expected at least 2 GPE entities, got %v", entities)
	}
	if gpe[0] != "Austin" {
		t.Fatalf("expected first GPE Austin, got %q", gpe[0])
	}
}

func TestRuleRecognizerOrgSuffix(t *testing.T) {
	entities, err := RuleRecognizer{}.Entities(context.Background(),
		"ABC Tech Company is seeking a talented engineer.")
	if err != nil {
		t.Fatalf("Entities: %v", err)
	}
	found := false
	for _, e := range entities {
		if e.Label == "ORG" && e.Text == "ABC Tech Company" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ORG entity 'ABC Tech Company', got %v", entities)
	}
}

func TestRuleRecognizerNoEntities(t *testing.T) {
	entities, err := RuleRecognizer{}.Entities(context.Background(),
		"looking for someone with strong skills")
	if err != nil {
		t.Fatalf("Entities: %v", err)
	}
	if len(entities) != 0 {
		t.Fatalf("expected no entities, got %v", entities)
	}
}

func TestLexiconClassifier(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"positive", "I achieved great results and improved performance.", "positive"},
		{"negative", "The project failed and everyone was frustrated.", "negative"},
		{"neutral", "I worked on the database layer.", "neutral"},
		{"tie", "great but frustrating", "neutral"},
		{"empty", "", "neutral"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := (LexiconClassifier{}).Classify(context.Background(), tc.text)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
