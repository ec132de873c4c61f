package jobparse

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed skills.json
var skillsJSON []byte

// Dictionary is an immutable skills reference, loaded once at startup and
// injected into the parser. Entries are deduplicated and matched longest
// first so multi-word skills win over their substrings.
type Dictionary struct {
	skills   []string
	patterns []*regexp.Regexp
}

// LoadDictionary parses a category→skills JSON document into a Dictionary.
func LoadDictionary(data []byte) (*Dictionary, error) {
	var byCategory map[string][]string
	if err := json.Unmarshal(data, &byCategory); err != nil {
		return nil, fmt.Errorf("parse skills dictionary: %w", err)
	}

	seen := make(map[string]bool)
	var skills []string
	for _, list := range byCategory {
		for _, skill := range list {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, skill)
		}
	}

	// Longest first; alphabetical within a length for determinism.
	sort.Slice(skills, func(i, j int) bool {
		if len(skills[i]) != len(skills[j]) {
			return len(skills[i]) > len(skills[j])
		}
		return skills[i] < skills[j]
	})

	patterns := make([]*regexp.Regexp, len(skills))
	for i, skill := range skills {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}

	return &Dictionary{skills: skills, patterns: patterns}, nil
}

// DefaultDictionary loads the embedded skills database.
func DefaultDictionary() (*Dictionary, error) {
	return LoadDictionary(skillsJSON)
}

// Len returns the number of distinct skills in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.skills)
}

// Match returns every dictionary skill present in text, using word-boundary
// matching against the lowercased text. Output preserves the dictionary's
// original casing and its longest-first order.
func (d *Dictionary) Match(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, pattern := range d.patterns {
		if pattern.MatchString(lower) {
			found = append(found, d.skills[i])
		}
	}
	return found
}
