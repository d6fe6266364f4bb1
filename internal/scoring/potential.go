package scoring

import (
	"strings"

	"github.com/founderlink/backend/internal/model"
)

// PotentialResult is the outcome of the investment potential heuristic:
// six independently-capped factor contributions, their exact sum clamped
// to [0,100], a categorical prediction, and a canned recommendation.
type PotentialResult struct {
	Score          int            `json:"score"`
	Factors        map[string]int `json:"factors"`
	Prediction     string         `json:"prediction"`
	Recommendation string         `json:"recommendation"`
}

// stagePoints maps known startup stages to their factor contribution
// (capped at 25). Unknown stages contribute 0.
var stagePoints = map[string]int{
	"idea":      5,
	"prototype": 10,
	"mvp":       15,
	"beta":      20,
	"launched":  25,
}

var recommendations = map[string]string{
	"high":   "Strong investment candidate. Traction, team and maturity all point the right way; worth a close look.",
	"medium": "Promising but unproven. Watch user growth and revenue before committing.",
	"low":    "Early or stalled. Revisit once the startup shows measurable traction.",
}

// Potential computes the investment potential of a startup from six
// capped factors: stage (25), users (20), revenue (20), engagement (15),
// team size (10) and description length (10). Values outside the
// enumerated bands contribute 0, never an error.
func Potential(startup *model.Startup) PotentialResult {
	factors := map[string]int{
		"stage":       stagePoints[strings.ToLower(startup.Stage)],
		"users":       userPoints(float64(startup.Users)),
		"revenue":     revenuePoints(float64(startup.Revenue)),
		"engagement":  engagementPoints(float64(startup.UpvoteCount)),
		"team":        teamPoints(float64(startup.TeamSize)),
		"description": descriptionPoints(len(startup.Description)),
	}

	score := 0
	for _, points := range factors {
		score += points
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	prediction := "low"
	switch {
	case score >= 70:
		prediction = "high"
	case score >= 40:
		prediction = "medium"
	}

	return PotentialResult{
		Score:          score,
		Factors:        factors,
		Prediction:     prediction,
		Recommendation: recommendations[prediction],
	}
}

func userPoints(users float64) int {
	switch {
	case users >= 10000:
		return 20
	case users >= 5000:
		return 15
	case users >= 1000:
		return 10
	case users >= 100:
		return 5
	}
	return 0
}

func revenuePoints(revenue float64) int {
	switch {
	case revenue >= 1000000:
		return 20
	case revenue >= 100000:
		return 15
	case revenue >= 10000:
		return 10
	case revenue > 0:
		return 5
	}
	return 0
}

func engagementPoints(upvotes float64) int {
	switch {
	case upvotes >= 50:
		return 15
	case upvotes >= 20:
		return 10
	case upvotes >= 5:
		return 5
	}
	return 0
}

func teamPoints(size float64) int {
	switch {
	case size >= 5:
		return 10
	case size >= 3:
		return 7
	case size >= 2:
		return 5
	case size >= 1:
		return 2
	}
	return 0
}

func descriptionPoints(length int) int {
	switch {
	case length >= 500:
		return 10
	case length >= 200:
		return 7
	case length >= 100:
		return 4
	}
	return 0
}
