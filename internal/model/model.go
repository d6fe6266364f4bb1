package model

import (
	"strconv"
	"strings"
)

// Number is a float64 that tolerates sloppy JSON: numbers, numeric strings,
// null, or anything else (which decodes to 0 rather than failing).
type Number float64

// UnmarshalJSON accepts numbers, quoted numbers and null. Unparseable
// values decode to zero instead of returning an error.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Startup is a listed venture as stored by the record store.
type Startup struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Stage       string   `json:"stage"`
	Users       Number   `json:"users"`
	Revenue     Number   `json:"revenue"`
	UpvoteCount Number   `json:"upvoteCount"`
	TeamSize    Number   `json:"teamSize"`
	FounderID   string   `json:"founderId"`
	Tags        []string `json:"tags,omitempty"`
}

// SearchText concatenates the text-bearing fields used for similarity matching.
func (s *Startup) SearchText() string {
	return strings.TrimSpace(strings.Join([]string{s.Name, s.Tagline, s.Description, s.Category}, " "))
}

// Investor is a platform user with an investor role.
type Investor struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Bio               string   `json:"bio"`
	Role              string   `json:"role"`
	Approved          bool     `json:"approved"`
	InvestmentDomains []string `json:"investmentDomains,omitempty"`
}

// ProfileText builds the synthetic profile document used for recommendations:
// the investor bio followed by their declared investment domains.
func (i *Investor) ProfileText() string {
	parts := make([]string, 0, 1+len(i.InvestmentDomains))
	if i.Bio != "" {
		parts = append(parts, i.Bio)
	}
	parts = append(parts, i.InvestmentDomains...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Review is user feedback about a startup, optionally carrying a star rating.
type Review struct {
	ID        string `json:"id"`
	StartupID string `json:"startupId"`
	AuthorID  string `json:"authorId"`
	Comment   string `json:"comment"`
	Rating    Number `json:"rating,omitempty"`
}
