package chatbot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/founderlink/backend/internal/model"
	"github.com/founderlink/backend/internal/search"
	"github.com/founderlink/backend/internal/store"
)

// Reply is the router's answer: canned response text, a category tag,
// and, for data-backed categories, the matching records.
type Reply struct {
	Response string      `json:"response"`
	Type     string      `json:"type"`
	Data     interface{} `json:"data,omitempty"`
}

// Router classifies free-text queries into a fixed set of categories,
// evaluated in priority order. It is deterministic: no scoring model,
// just first-match patterns.
type Router struct {
	Store     store.RecordStore
	Logger    *logrus.Entry
	Responses Responses
	Limit     int
}

// Patterns are evaluated top to bottom; the first hit wins.
var (
	greetingPattern = regexp.MustCompile(`(?i)^\s*(hi|hello|hey|howdy|greetings|good\s+(morning|afternoon|evening))\b`)
	startupPattern  = regexp.MustCompile(`(?i)\b(startups?|ventures?|compan(y|ies)|invest\s+in|pitch(es)?|founders?)\b`)
	investorPattern = regexp.MustCompile(`(?i)\b(investors?|funding|fundrais\w*|angels?|vcs?|venture\s+capital)\b`)
	profilePattern  = regexp.MustCompile(`(?i)\b(profile|account|settings|password|my\s+(bio|details|info))\b`)
	helpPattern     = regexp.MustCompile(`(?i)\b(help|how\s+(do|can)\s+i|how\s+to|guide|stuck)\b`)
	featurePattern  = regexp.MustCompile(`(?i)\b(features?|capabilit\w*|what\s+can\s+you\s+do|what\s+do\s+you\s+do)\b`)
)

// NewRouter builds a router over the given record store.
func NewRouter(st store.RecordStore, logger *logrus.Entry, responses Responses) *Router {
	return &Router{
		Store:     st,
		Logger:    logger,
		Responses: responses,
		Limit:     search.DefaultLimit,
	}
}

// Route answers a free-text query. The optional user personalizes
// greetings and is otherwise unused. Routing never fails on the text
// itself; only record-store errors surface.
func (r *Router) Route(query string, user *model.Investor) (*Reply, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &Reply{Response: r.Responses.Fallback, Type: "default"}, nil
	}

	switch {
	case greetingPattern.MatchString(trimmed):
		return r.greet(user), nil
	case startupPattern.MatchString(trimmed):
		return r.findStartups(trimmed)
	case investorPattern.MatchString(trimmed):
		return r.findInvestors()
	case profilePattern.MatchString(trimmed):
		return &Reply{Response: r.Responses.Profile, Type: "profile"}, nil
	case helpPattern.MatchString(trimmed):
		return &Reply{Response: r.Responses.Help, Type: "help"}, nil
	case featurePattern.MatchString(trimmed):
		return &Reply{Response: r.Responses.Features, Type: "features"}, nil
	}
	return &Reply{Response: r.Responses.Fallback, Type: "default"}, nil
}

func (r *Router) greet(user *model.Investor) *Reply {
	response := r.Responses.Greeting
	if user != nil && user.Name != "" {
		response = fmt.Sprintf("Hi %s! %s", user.Name, response)
	}
	return &Reply{Response: response, Type: "greeting"}
}

// findStartups answers startup-discovery queries. A recognized category
// triggers a direct filtered lookup first; when that is empty (or no
// category was named) the semantic search over all listings is the
// fallback. Both coming up empty is the explicit no-results branch.
func (r *Router) findStartups(query string) (*Reply, error) {
	category := extractCategory(query)

	var matches []*model.Startup
	if category != "" {
		direct, err := r.Store.FilterStartupsByCategory(category)
		if err != nil {
			return nil, fmt.Errorf("category lookup failed: %w", err)
		}
		matches = direct
	}

	if len(matches) == 0 {
		all, err := r.Store.ListStartups()
		if err != nil {
			return nil, fmt.Errorf("startup listing failed: %w", err)
		}
		for _, hit := range search.FindSimilarStartups(query, all, r.Limit) {
			matches = append(matches, hit.Startup)
		}
	}

	if len(matches) == 0 {
		return &Reply{Response: r.Responses.StartupEmpty, Type: "no_results"}, nil
	}
	if len(matches) > r.Limit {
		matches = matches[:r.Limit]
	}

	r.Logger.WithFields(logrus.Fields{
		"category": category,
		"matches":  len(matches),
	}).Debug("Chatbot startup search")

	return &Reply{Response: r.Responses.StartupFound, Type: "startup_search", Data: matches}, nil
}

func (r *Router) findInvestors() (*Reply, error) {
	investors, err := r.Store.ListInvestors()
	if err != nil {
		return nil, fmt.Errorf("investor listing failed: %w", err)
	}

	approved := store.ApprovedInvestors(investors)
	if len(approved) == 0 {
		return &Reply{Response: r.Responses.InvestorEmpty, Type: "no_results"}, nil
	}
	if len(approved) > r.Limit {
		approved = approved[:r.Limit]
	}
	return &Reply{Response: r.Responses.InvestorFound, Type: "investor_search", Data: approved}, nil
}
