package search_test

import (
	"fmt"
	"math"
	"testing"
	"unicode"

	"github.com/founderlink/backend/internal/model"
	"github.com/founderlink/backend/internal/search"
)

func TestTokenize(t *testing.T) {
	text := "Hello, World! This is a test."
	tokens := search.Tokenize(text)

	expected := []string{"hello", "world", "this", "test"}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, token := range tokens {
		if token != expected[i] {
			t.Errorf("At index %d: expected %s, got %s", i, expected[i], token)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := search.Tokenize(""); len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty text, got %v", tokens)
	}
	if tokens := search.Tokenize("a an it !!"); len(tokens) != 0 {
		t.Errorf("Expected all short tokens dropped, got %v", tokens)
	}
}

func TestTokenizeNormalization(t *testing.T) {
	tokens := search.Tokenize("FinTech: Mobile PAYMENTS, for Students!")
	for _, token := range tokens {
		if len(token) <= 2 {
			t.Errorf("Token %q is too short", token)
		}
		for _, r := range token {
			if unicode.IsUpper(r) {
				t.Errorf("Token %q contains uppercase", token)
			}
		}
	}
}

func TestTFIDFVectorizer(t *testing.T) {
	corpus := []string{
		"apple banana",
		"apple orange",
	}

	vectorizer := search.NewTFIDFVectorizer(corpus)

	vec := vectorizer.Transform("apple banana")
	if len(vec) != 2 {
		t.Fatalf("Expected 2 weighted terms, got %d", len(vec))
	}

	// banana appears in one of two docs: idf = ln(2/2) = 0
	// apple appears in both: idf = ln(2/3) < 0 (accepted behavior)
	if vec["banana"] != 0 {
		t.Errorf("Expected banana weight 0 (ln(2/2)=0), got %f", vec["banana"])
	}
	if vec["apple"] >= 0 {
		t.Errorf("Expected negative apple weight for ubiquitous term, got %f", vec["apple"])
	}
}

func TestTFIDFVectorizerEmptyDocument(t *testing.T) {
	vectorizer := search.NewTFIDFVectorizer([]string{"some text here", ""})
	vec := vectorizer.Transform("")
	if len(vec) != 0 {
		t.Errorf("Expected empty vector for empty document, got %v", vec)
	}
}

func TestCosineSimilarity(t *testing.T) {
	vecA := search.TermVector{"go": 1, "fast": 1}
	vecB := search.TermVector{"python": 1, "fast": 1}

	// Dot: 1, norms: sqrt(2) each -> 0.5
	score := search.CosineSimilarity(vecA, vecB)
	if math.Abs(score-0.5) > 0.0001 {
		t.Errorf("Expected similarity 0.5, got %f", score)
	}
}

func TestCosineSimilaritySelf(t *testing.T) {
	vec := search.TermVector{"alpha": 0.3, "beta": 0.9, "gamma": 0.1}
	score := search.CosineSimilarity(vec, vec)
	if math.Abs(score-1) > 0.0001 {
		t.Errorf("Expected self-similarity 1, got %f", score)
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	empty := search.TermVector{}
	other := search.TermVector{"term": 0.5}

	if score := search.CosineSimilarity(empty, other); score != 0 {
		t.Errorf("Expected 0 for empty vector, got %f", score)
	}
	if score := search.CosineSimilarity(other, empty); score != 0 {
		t.Errorf("Expected 0 for empty vector, got %f", score)
	}
}

func TestFindSimilarStartups(t *testing.T) {
	candidates := []*model.Startup{
		{ID: "s1", Name: "PayEase", Tagline: "Mobile payments for students", Description: "A fintech app", Category: "fintech"},
		{ID: "s2", Name: "EduLearn", Tagline: "Online courses", Description: "Learning platform", Category: "edtech"},
	}

	results := search.FindSimilarStartups("fintech payments app", candidates, 10)

	if len(results) == 0 {
		t.Fatal("Expected results, got none")
	}
	if results[0].Startup.ID != "s1" {
		t.Errorf("Expected PayEase ranked first, got %s", results[0].Startup.Name)
	}
	for _, hit := range results {
		if hit.Score <= search.ScoreThreshold {
			t.Errorf("Result %s has score %f at or below the threshold", hit.Startup.Name, hit.Score)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("Results not sorted descending at index %d", i)
		}
	}
}

func TestFindSimilarStartupsEmptyInputs(t *testing.T) {
	candidates := []*model.Startup{{ID: "s1", Name: "PayEase", Category: "fintech"}}

	if results := search.FindSimilarStartups("", candidates, 10); results != nil {
		t.Errorf("Expected nil for empty query, got %v", results)
	}
	if results := search.FindSimilarStartups("   ", candidates, 10); results != nil {
		t.Errorf("Expected nil for blank query, got %v", results)
	}
	if results := search.FindSimilarStartups("fintech", nil, 10); results != nil {
		t.Errorf("Expected nil for no candidates, got %v", results)
	}
}

func TestFindSimilarStartupsLimit(t *testing.T) {
	var candidates []*model.Startup
	niches := []string{"lending", "insurance", "savings", "budgeting", "invoicing", "payroll"}
	for i, niche := range niches {
		candidates = append(candidates, &model.Startup{
			ID:      fmt.Sprintf("fin%d", i),
			Name:    "Pay" + niche,
			Tagline: "fintech payments for " + niche,
		})
	}
	for i := 0; i < 6; i++ {
		candidates = append(candidates, &model.Startup{
			ID:      fmt.Sprintf("edu%d", i),
			Name:    fmt.Sprintf("Learn%d", i),
			Tagline: "online courses for universities",
		})
	}

	results := search.FindSimilarStartups("fintech payments", candidates, 3)
	if len(results) != 3 {
		t.Errorf("Expected exactly 3 results, got %d", len(results))
	}

	// Default limit applies when the caller passes none
	results = search.FindSimilarStartups("fintech payments", candidates, 0)
	if len(results) == 0 || len(results) > search.DefaultLimit {
		t.Errorf("Expected 1..%d results, got %d", search.DefaultLimit, len(results))
	}
}

func TestRecommendForInvestor(t *testing.T) {
	candidates := []*model.Startup{
		{ID: "s1", Name: "PayEase", Tagline: "Mobile payments", Description: "A fintech payments app for students", Category: "fintech"},
		{ID: "s2", Name: "EduLearn", Tagline: "Online courses", Description: "Learning platform for universities", Category: "edtech"},
	}
	investor := &model.Investor{
		Bio:               "I back early fintech and payments companies",
		InvestmentDomains: []string{"fintech"},
	}

	results := search.RecommendForInvestor(investor, candidates, 10)
	if len(results) == 0 {
		t.Fatal("Expected recommendations, got none")
	}
	if results[0].Startup.ID != "s1" {
		t.Errorf("Expected fintech startup first, got %s", results[0].Startup.Name)
	}
}

func TestRecommendForInvestorColdStart(t *testing.T) {
	candidates := []*model.Startup{
		{ID: "s1", Name: "Low", UpvoteCount: 3},
		{ID: "s2", Name: "High", UpvoteCount: 42},
		{ID: "s3", Name: "Mid", UpvoteCount: 17},
	}

	// Blank profile falls back to popularity ordering
	results := search.RecommendForInvestor(&model.Investor{Bio: "   "}, candidates, 2)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Startup.ID != "s2" || results[1].Startup.ID != "s3" {
		t.Errorf("Expected upvote ordering s2,s3; got %s,%s", results[0].Startup.ID, results[1].Startup.ID)
	}

	// Nil investor behaves the same
	results = search.RecommendForInvestor(nil, candidates, 10)
	if len(results) != 3 || results[0].Startup.ID != "s2" {
		t.Errorf("Expected popularity fallback for nil investor")
	}
}
