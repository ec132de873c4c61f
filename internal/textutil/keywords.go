package textutil

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultTopN is the keyword cap used by generic extraction callers.
const DefaultTopN = 50

// ExtractKeywords normalizes text, tokenizes it, drops stop words, short
// tokens, and tokens containing non-alphabetic characters, and returns the
// topN most frequent tokens. Ties are broken by first-encountered order so
// extraction is deterministic. topN <= 0 falls back to DefaultTopN.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopN
	}

	type entry struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*entry)
	order := make([]*entry, 0, 64)
	pos := 0

	for _, token := range Tokenize(Normalize(text)) {
		pos++
		if len(token) < 3 || IsStopWord(token) || !isAlpha(token) {
			continue
		}
		if e, ok := counts[token]; ok {
			e.count++
			continue
		}
		e := &entry{word: token, count: 1, first: pos}
		counts[token] = e
		order = append(order, e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > topN {
		order = order[:topN]
	}
	out := make([]string, len(order))
	for i, e := range order {
		out[i] = e.word
	}
	return out
}

// Tokenize splits text into word-like units: maximal runs of letters and
// digits. Punctuation is discarded.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isAlpha(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(token) > 0
}
