package nlp

import (
	"context"
	"regexp"
	"strings"
)

// RuleRecognizer is a pattern-based entity recognizer. It covers the two
// shapes that dominate job postings: "City, ST" location mentions and
// company names carrying a corporate suffix. It is deterministic and never
// calls out of process.
type RuleRecognizer struct{}

var (
	// "Austin, TX" / "San Francisco, CA" — city followed by a state code.
	cityStateRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)*),\s*([A-Z]{2})\b`)

	// Explicit "Location:" lines; the value is split on commas below.
	locationLineRe = regexp.MustCompile(`(?im)^\s*location:\s*(.+)$`)

	// Capitalized phrase ending in a corporate suffix.
	orgRe = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&.]*(?: [A-Z][A-Za-z0-9&.]*)* (?:Inc|LLC|Ltd|Corp|Corporation|Company|Technologies|Labs|Systems|Solutions|Group)\b\.?)`)

	// "at Acme" / "join Acme" — a capitalized name after a hiring verb.
	orgContextRe = regexp.MustCompile(`(?:\bat|\bjoin|\bjoining)\s+([A-Z][A-Za-z0-9&]+(?: [A-Z][A-Za-z0-9&]+){0,2})\b`)
)

// Entities extracts ORG and GPE entities from text. The error return is
// always nil for the rule-based recognizer but remains part of the contract
// so remote recognizers can report failure.
func (RuleRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entities []Entity
	seen := make(map[string]bool)
	add := func(text, label string) {
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "."))
		if text == "" {
			return
		}
		key := label + "|" + strings.ToLower(text)
		if seen[key] {
			return
		}
		seen[key] = true
		entities = append(entities, Entity{Text: text, Label: label})
	}

	for _, m := range locationLineRe.FindAllStringSubmatch(text, -1) {
		for _, part := range strings.Split(m[1], ",") {
			add(part, "GPE")
		}
	}
	for _, m := range cityStateRe.FindAllStringSubmatch(text, -1) {
		add(m[1], "GPE")
		add(m[2], "GPE")
	}
	for _, m := range orgRe.FindAllStringSubmatch(text, -1) {
		add(m[1], "ORG")
	}
	for _, m := range orgContextRe.FindAllStringSubmatch(text, -1) {
		candidate := m[1]
		// Skip phrases that are clearly not company names.
		if looksLikeOrgNoise(candidate) {
			continue
		}
		add(candidate, "ORG")
	}

	return entities, nil
}

var orgNoiseWords = map[string]bool{
	"we": true, "our": true, "the": true, "a": true, "an": true,
	"least": true, "this": true, "you": true, "work": true, "home": true,
}

func looksLikeOrgNoise(candidate string) bool {
	first := strings.ToLower(strings.Fields(candidate)[0])
	return orgNoiseWords[first]
}
