package search

import (
	"sort"
	"strings"

	"github.com/founderlink/backend/internal/model"
)

const (
	// ScoreThreshold is the similarity floor: matches at or below it are
	// treated as noise and dropped.
	ScoreThreshold = 0.1

	// DefaultLimit caps result sets when the caller passes no limit.
	DefaultLimit = 10
)

// ScoredStartup pairs a candidate startup with its similarity score in [0,1].
type ScoredStartup struct {
	Startup *model.Startup
	Score   float64
}

// FindSimilarStartups ranks candidates against a free-text query.
// The corpus for document-frequency counts is every candidate's combined
// text plus the query itself. Candidates scoring at or below
// ScoreThreshold are filtered out; the rest are sorted descending by score
// and truncated to limit. Empty query or candidates yields nil.
func FindSimilarStartups(query string, candidates []*model.Startup, limit int) []ScoredStartup {
	if strings.TrimSpace(query) == "" || len(candidates) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	corpus := make([]string, 0, len(candidates))
	for _, c := range candidates {
		corpus = append(corpus, c.SearchText())
	}

	vectorizer := NewTFIDFVectorizer(corpus)
	// The query joins the corpus for the size term only. Counting it
	// toward document frequency zeroes out every term shared by the
	// query and exactly one candidate (ln(N/N) = 0), which would make
	// single-candidate matches unfindable.
	vectorizer.DocCount++
	queryVector := vectorizer.Transform(query)

	var results []ScoredStartup
	for _, c := range candidates {
		score := CosineSimilarity(queryVector, vectorizer.Transform(c.SearchText()))
		if score > ScoreThreshold {
			results = append(results, ScoredStartup{Startup: c, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		return results[:limit]
	}
	return results
}

// RecommendForInvestor ranks candidates against an investor's profile
// document (bio plus declared investment domains). An investor with no
// profile signal gets the cold-start fallback: candidates ordered by
// upvote count, truncated to limit.
func RecommendForInvestor(investor *model.Investor, candidates []*model.Startup, limit int) []ScoredStartup {
	if limit <= 0 {
		limit = DefaultLimit
	}

	profile := ""
	if investor != nil {
		profile = investor.ProfileText()
	}
	if strings.TrimSpace(profile) == "" {
		return rankByPopularity(candidates, limit)
	}
	return FindSimilarStartups(profile, candidates, limit)
}

func rankByPopularity(candidates []*model.Startup, limit int) []ScoredStartup {
	results := make([]ScoredStartup, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, ScoredStartup{Startup: c})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Startup.UpvoteCount > results[j].Startup.UpvoteCount
	})
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
