package jobparse

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"resume-coach/internal/nlp"
)

// Parser extracts structured fields from job description text. It is
// stateless apart from the injected skills dictionary and entity
// recognizer, so a single Parser serves concurrent requests.
type Parser struct {
	Skills *Dictionary
	NER    nlp.EntityRecognizer
}

// NewParser constructs a Parser.
func NewParser(skills *Dictionary, ner nlp.EntityRecognizer) *Parser {
	return &Parser{Skills: skills, NER: ner}
}

// experiencePatterns are tried in order; the first match wins even if a
// later pattern would also match. Two capture groups mean a range.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:to|\-)\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\+\s*years?`),
	regexp.MustCompile(`minimum\s+(\d+)\s*years?`),
	regexp.MustCompile(`at least\s+(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*years?.*experience`),
}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`bachelor'?s?\s+(?:degree)?(?:\s+in\s+[\w\s]+)?`),
	regexp.MustCompile(`master'?s?\s+(?:degree)?(?:\s+in\s+[\w\s]+)?`),
	regexp.MustCompile(`phd|doctorate|doctoral\s+(?:degree)?`),
	regexp.MustCompile(`associate'?s?\s+(?:degree)?`),
	regexp.MustCompile(`b\.?s\.?|m\.?s\.?|m\.?b\.?a\.?|ph\.?d\.?`),
	regexp.MustCompile(`(?:bachelor|master|doctoral)\s+(?:of\s+)?(?:science|arts|engineering|business)`),
}

var (
	certMentionRe = regexp.MustCompile(`certification|certified`)
	certNameRe    = regexp.MustCompile(`(?i)([A-Z]{2,}(?:\s+[A-Z]{2,})*)\s+certified`)

	salaryRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:to|\-)\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:per\s+year|annually|/year)?`),
		regexp.MustCompile(`(?i)\$\s*(\d+)k?\s*(?:to|\-)\s*\$?\s*(\d+)k?\s*(?:per\s+year|annually|/year)?`),
	}
	salarySingleRe = regexp.MustCompile(`(?i)\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:per\s+year|annually|/year)`)

	titleLabelRe = regexp.MustCompile(`(?i)(?:position|title|role):\s*(.+?)(?:\n|$)`)
)

// titleStopWords disqualify a first line from being treated as the job
// title; matching is by substring, so generic prose lines fail fast.
var titleStopWords = []string{"the", "we", "are", "is", "company"}

// Parse extracts skills, experience, qualifications, salary, location,
// entities, job title, and company from a job description. Extraction is
// best-effort: unfound fields come back nil. A recognizer failure fails the
// whole parse, since location, company, and entities have no safe default.
func (p *Parser) Parse(ctx context.Context, text string) (ParsedJob, error) {
	entities, err := p.NER.Entities(ctx, text)
	if err != nil {
		return ParsedJob{}, fmt.Errorf("extract entities: %w", err)
	}

	job := ParsedJob{
		Skills:          p.Skills.Match(text),
		ExperienceYears: extractExperience(text),
		Qualifications:  extractQualifications(text),
		Salary:          extractSalary(text),
		Location:        locationFrom(entities),
		Entities:        entities,
		JobTitle:        extractJobTitle(text),
		Company:         companyFrom(entities),
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if job.Qualifications == nil {
		job.Qualifications = []string{}
	}
	if job.Entities == nil {
		job.Entities = []nlp.Entity{}
	}
	return job, nil
}

func extractExperience(text string) *string {
	lower := strings.ToLower(text)
	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		var formatted string
		if len(m) == 3 && m[2] != "" {
			formatted = fmt.Sprintf("%s-%s years", m[1], m[2])
		} else {
			formatted = fmt.Sprintf("%s+ years", m[1])
		}
		return &formatted
	}
	return nil
}

func extractQualifications(text string) []string {
	lower := strings.ToLower(text)
	var quals []string
	seen := make(map[string]bool)

	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			qual := strings.TrimSpace(match)
			if qual == "" || seen[qual] {
				continue
			}
			seen[qual] = true
			quals = append(quals, titleCase(qual))
		}
	}

	if certMentionRe.MatchString(lower) {
		if m := certNameRe.FindStringSubmatch(text); m != nil {
			quals = append(quals, m[1]+" Certified")
		}
	}
	return quals
}

func extractSalary(text string) *string {
	for _, pattern := range salaryRangePatterns {
		if m := pattern.FindString(text); m != "" {
			s := strings.TrimSpace(m)
			return &s
		}
	}
	if m := salarySingleRe.FindString(text); m != "" {
		s := strings.TrimSpace(m)
		return &s
	}
	return nil
}

func extractJobTitle(text string) *string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if first != "" && len(strings.Fields(first)) <= 8 && !containsTitleStopWord(first) {
			return &first
		}
	}
	if m := titleLabelRe.FindStringSubmatch(text); m != nil {
		title := strings.TrimSpace(m[1])
		if title != "" {
			return &title
		}
	}
	return nil
}

func containsTitleStopWord(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range titleStopWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func locationFrom(entities []nlp.Entity) *string {
	var locations []string
	seen := make(map[string]bool)
	for _, e := range entities {
		if e.Label != "GPE" && e.Label != "LOC" {
			continue
		}
		if seen[e.Text] {
			continue
		}
		seen[e.Text] = true
		locations = append(locations, e.Text)
	}
	if len(locations) == 0 {
		return nil
	}
	if len(locations) > 2 {
		locations = locations[:2]
	}
	joined := strings.Join(locations, ", ")
	return &joined
}

func companyFrom(entities []nlp.Entity) *string {
	for _, e := range entities {
		if e.Label == "ORG" {
			company := e.Text
			return &company
		}
	}
	return nil
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, so "b.s." becomes "B.S." and "bachelor's degree"
// becomes "Bachelor'S Degree" the way the display layer expects.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
