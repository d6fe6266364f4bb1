package search

import (
	"math"
)

// DocumentSimilarity compares two standalone documents. The two-document
// corpus is too small for the raw IDF formula (every shared term would
// weigh ln(2/3), every unique term ln(2/2) = 0, collapsing the cosine to
// 0 or 1), so this uses the smoothed variant ln(N/(df+1)) + 1 instead.
func DocumentSimilarity(a, b string) float64 {
	return CosineSimilarity(smoothedVector(a, b), smoothedVector(b, a))
}

func smoothedVector(doc, other string) TermVector {
	vector := make(TermVector)
	tokens := Tokenize(doc)
	if len(tokens) == 0 {
		return vector
	}

	otherTerms := make(map[string]bool)
	for _, token := range Tokenize(other) {
		otherTerms[token] = true
	}

	tf := make(map[string]float64)
	for _, token := range tokens {
		tf[token]++
	}

	total := float64(len(tokens))
	for token, count := range tf {
		df := 1.0
		if otherTerms[token] {
			df = 2.0
		}
		idf := math.Log(2.0/(df+1)) + 1
		vector[token] = (count / total) * idf
	}
	return vector
}
