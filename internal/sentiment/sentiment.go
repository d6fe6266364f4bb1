package sentiment

import (
	"math"
	"strings"

	"github.com/founderlink/backend/internal/search"
)

// Result is a categorical sentiment label plus a continuous score in [-1,1].
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Label thresholds: scores above +0.2 are positive, below -0.2 negative.
const labelThreshold = 0.2

// ratingBlendWeight is the share the lexicon score keeps when a star
// rating is supplied alongside the text. See AnalyzeWithRating.
const ratingBlendWeight = 0.5

// Lexicons are tuned for startup and product feedback vocabulary.
// Read-only after init; safe to share across concurrent calls.
var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "awesome", "fantastic",
	"innovative", "promising", "impressive", "brilliant", "outstanding",
	"solid", "strong", "useful", "helpful", "valuable", "exciting",
	"love", "loved", "like", "best", "perfect", "wonderful", "smart",
	"scalable", "profitable", "disruptive", "unique", "efficient", "reliable",
)

var negativeWords = wordSet(
	"bad", "poor", "terrible", "awful", "horrible", "disappointing",
	"weak", "risky", "skeptical", "doubtful", "overpriced", "useless",
	"broken", "buggy", "slow", "confusing", "hate", "hated", "worst",
	"failing", "failed", "unreliable", "unprofitable", "unclear",
	"mediocre", "flawed", "saturated", "unrealistic", "overhyped", "copycat",
)

// Analyze scores text against the fixed lexicons.
// score = (positive - negative) / max(positive + negative, 1),
// rounded to 2 decimal places. Empty text is neutral without scanning.
func Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: "neutral", Score: 0}
	}

	var positive, negative int
	for _, token := range search.Tokenize(text) {
		if positiveWords[token] {
			positive++
		}
		if negativeWords[token] {
			negative++
		}
	}

	total := positive + negative
	if total < 1 {
		total = 1
	}
	return resultFor(float64(positive-negative) / float64(total))
}

// AnalyzeWithRating blends the lexicon score with a 1-5 star rating at a
// fixed 50/50 weight; the rating maps linearly to [-1,1] via (rating-3)/2.
// A rating outside [1,5] is ignored and the plain lexicon score applies.
// Empty text with a valid rating scores on the rating alone.
func AnalyzeWithRating(text string, rating float64) Result {
	if rating < 1 || rating > 5 {
		return Analyze(text)
	}
	ratingScore := (rating - 3) / 2
	if strings.TrimSpace(text) == "" {
		return resultFor(ratingScore)
	}
	lexicon := Analyze(text)
	return resultFor(ratingBlendWeight*lexicon.Score + (1-ratingBlendWeight)*ratingScore)
}

func resultFor(score float64) Result {
	score = math.Round(score*100) / 100
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	label := "neutral"
	if score > labelThreshold {
		label = "positive"
	} else if score < -labelThreshold {
		label = "negative"
	}
	return Result{Label: label, Score: score}
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
