package chatbot

import (
	"strings"
)

// categoryKeywords are the listing categories the router can extract from
// free text. Checked in order so that longer phrases win over fragments.
var categoryKeywords = []string{
	"fintech",
	"edtech",
	"healthtech",
	"agritech",
	"foodtech",
	"ecommerce",
	"saas",
	"gaming",
	"social",
	"travel",
	"logistics",
	"proptech",
	"cleantech",
	"insurtech",
	"legaltech",
	"hrtech",
	"cybersecurity",
	"entertainment",
	"ai",
}

// categorySynonyms folds everyday vocabulary onto listing categories.
// Multi-word phrases come first so they match before their fragments.
var categorySynonyms = []struct {
	phrase   string
	category string
}{
	{"artificial intelligence", "ai"},
	{"machine learning", "ai"},
	{"real estate", "proptech"},
	{"e-commerce", "ecommerce"},
	{"finance", "fintech"},
	{"financial", "fintech"},
	{"payments", "fintech"},
	{"banking", "fintech"},
	{"education", "edtech"},
	{"learning", "edtech"},
	{"healthcare", "healthtech"},
	{"health", "healthtech"},
	{"medical", "healthtech"},
	{"agriculture", "agritech"},
	{"farming", "agritech"},
	{"food", "foodtech"},
	{"retail", "ecommerce"},
	{"shopping", "ecommerce"},
	{"software", "saas"},
	{"games", "gaming"},
	{"security", "cybersecurity"},
	{"insurance", "insurtech"},
	{"legal", "legaltech"},
	{"recruiting", "hrtech"},
	{"hiring", "hrtech"},
	{"property", "proptech"},
	{"energy", "cleantech"},
	{"climate", "cleantech"},
	{"media", "entertainment"},
	{"delivery", "logistics"},
	{"transport", "logistics"},
	{"tourism", "travel"},
}

// extractCategory pulls the first recognizable category out of a query,
// folding synonyms onto canonical category names. Single-word keywords
// match whole words only ("ai" must not fire on "maintain"); multi-word
// synonym phrases match as substrings. Returns "" when the query names no
// known category.
func extractCategory(query string) string {
	lower := strings.ToLower(query)
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	}) {
		words[w] = true
	}

	for _, keyword := range categoryKeywords {
		if words[keyword] {
			return keyword
		}
	}
	for _, syn := range categorySynonyms {
		if strings.Contains(syn.phrase, " ") || strings.Contains(syn.phrase, "-") {
			if strings.Contains(lower, syn.phrase) {
				return syn.category
			}
		} else if words[syn.phrase] {
			return syn.category
		}
	}
	return ""
}
