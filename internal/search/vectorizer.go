package search

import (
	"math"
)

// TermVector maps a normalized term to its TF-IDF weight. Vectors are
// built fresh per call and never mutated after construction.
type TermVector map[string]float64

// TFIDFVectorizer computes term weights relative to a fixed corpus.
// The corpus is expected to include the documents being transformed.
type TFIDFVectorizer struct {
	DocCount int
	DF       map[string]int
}

// NewTFIDFVectorizer tokenizes the corpus once and records document
// frequencies. No incremental index is kept; corpora here are small
// (a few hundred records at most) so correctness wins over speed.
func NewTFIDFVectorizer(corpus []string) *TFIDFVectorizer {
	v := &TFIDFVectorizer{
		DocCount: len(corpus),
		DF:       make(map[string]int),
	}
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, token := range Tokenize(doc) {
			if !seen[token] {
				v.DF[token]++
				seen[token] = true
			}
		}
	}
	return v
}

// Transform converts text into a sparse TF-IDF vector.
// TF = occurrences / total tokens; IDF = ln(N / (df + 1)).
// IDF can go negative for terms present in nearly every document of a
// small corpus; that is accepted behavior and naturally down-weights
// ubiquitous terms. A document with zero tokens yields an empty vector.
func (v *TFIDFVectorizer) Transform(text string) TermVector {
	vector := make(TermVector)
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return vector
	}

	tf := make(map[string]float64)
	for _, token := range tokens {
		tf[token]++
	}

	total := float64(len(tokens))
	for token, count := range tf {
		idf := math.Log(float64(v.DocCount) / float64(v.DF[token]+1))
		vector[token] = (count / total) * idf
	}

	return vector
}
