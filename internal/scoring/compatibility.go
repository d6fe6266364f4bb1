package scoring

import (
	"math"
	"strings"

	"github.com/founderlink/backend/internal/model"
	"github.com/founderlink/backend/internal/search"
)

// Compatibility scores how well a startup fits an investor's profile,
// on a 0-100 scale:
//
//	base 50
//	+30 when a declared investment domain matches the startup category
//	+20 * cosine similarity of profile text vs. startup text
//	+5  when the startup is at the idea or prototype stage
//
// The result is rounded to the nearest integer and clamped to [0,100].
func Compatibility(investor *model.Investor, startup *model.Startup) int {
	score := 50.0

	if investor != nil {
		for _, domain := range investor.InvestmentDomains {
			if strings.EqualFold(domain, startup.Category) {
				score += 30
				break
			}
		}
		score += textSimilarity(investor.ProfileText(), startup.SearchText()) * 20
	}

	stage := strings.ToLower(startup.Stage)
	if stage == "idea" || stage == "prototype" {
		score += 5
	}

	result := int(math.Round(score))
	if result > 100 {
		return 100
	}
	if result < 0 {
		return 0
	}
	return result
}

// textSimilarity compares two documents pairwise.
func textSimilarity(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}
	return search.DocumentSimilarity(a, b)
}
