package search

import (
	"math"
)

// CosineSimilarity calculates the cosine similarity between two sparse
// vectors over the union of their term keys. Returns exactly 0 when either
// norm is 0. The result is clamped to [0,1]: weights are non-negative in
// practice, but the IDF formula can emit negative weights for ubiquitous
// terms in tiny corpora, so we guard rather than assume.
func CosineSimilarity(a, b TermVector) float64 {
	var dotProduct, normA, normB float64
	for term, wa := range a {
		dotProduct += wa * b[term]
		normA += wa * wa
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	score := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
