package similarity

import (
	"math"
	"sort"
	"strings"

	"resume-coach/internal/textutil"
)

// maxFeatures caps the vocabulary at the most frequent terms across the
// two-document corpus.
const maxFeatures = 500

// TFIDF computes the TF-IDF cosine similarity between two documents.
//
// Both documents are normalized, tokenized, and stripped of English stop
// words; the vocabulary is built from unigrams and bigrams, capped at the
// top maxFeatures terms by corpus frequency (ties broken alphabetically).
// Term weights use smoothed inverse document frequency and each vector is
// l2-normalized before taking the dot product, so the result lies in [0,1].
//
// Degenerate input (either document reduces to an empty vocabulary) yields
// 0.0 rather than an error.
func TFIDF(docA, docB string) float64 {
	termsA := ngrams(docA)
	termsB := ngrams(docB)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.0
	}

	countsA := countTerms(termsA)
	countsB := countTerms(termsB)

	vocab := buildVocabulary(countsA, countsB)
	if len(vocab) == 0 {
		return 0.0
	}

	// Smoothed idf over the two-document corpus: ln((1+n)/(1+df)) + 1.
	const n = 2.0
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log((1+n)/(1+df)) + 1
		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}

	normA := l2norm(vecA)
	normB := l2norm(vecB)
	if normA == 0 || normB == 0 {
		return 0.0
	}

	dot := 0.0
	for i := range vecA {
		dot += vecA[i] * vecB[i]
	}
	sim := dot / (normA * normB)
	// Guard against floating point drift past the cosine bounds.
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}

// ngrams returns the unigram and bigram terms of a document after
// normalization and stop word removal. Bigrams are formed over the
// stop-word-filtered token sequence.
func ngrams(doc string) []string {
	raw := textutil.Tokenize(textutil.Normalize(doc))
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < 2 || textutil.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func countTerms(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// buildVocabulary merges both documents' term counts and keeps the top
// maxFeatures terms by total frequency, ties broken alphabetically.
func buildVocabulary(countsA, countsB map[string]int) []string {
	totals := make(map[string]int, len(countsA)+len(countsB))
	for t, c := range countsA {
		totals[t] += c
	}
	for t, c := range countsB {
		totals[t] += c
	}

	vocab := make([]string, 0, len(totals))
	for t := range totals {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totals[vocab[i]] != totals[vocab[j]] {
			return totals[vocab[i]] > totals[vocab[j]]
		}
		return strings.Compare(vocab[i], vocab[j]) < 0
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

func l2norm(vec []float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}
