package tags

import (
	"sort"
	"unicode"

	"github.com/founderlink/backend/internal/search"
)

// DefaultMaxTags caps generated tags when the caller passes no limit.
const DefaultMaxTags = 5

// minTagLength drops short tokens that make poor tags.
const minTagLength = 4

// stopwords holds common English function words excluded from tags.
// Read-only after init; safe to share across concurrent calls.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "him": true, "his": true, "how": true, "its": true,
	"that": true, "this": true, "with": true, "from": true, "they": true,
	"been": true, "have": true, "were": true, "will": true, "would": true,
	"could": true, "should": true, "there": true, "their": true, "about": true,
	"which": true, "when": true, "what": true, "where": true, "these": true,
	"those": true, "than": true, "then": true, "them": true, "some": true,
	"such": true, "into": true, "over": true, "under": true, "very": true,
	"just": true, "also": true, "more": true, "most": true, "other": true,
	"your": true, "yours": true, "ours": true, "here": true, "each": true,
	"only": true, "once": true, "both": true, "while": true, "after": true,
	"before": true, "between": true, "through": true, "during": true, "again": true,
	"does": true, "doing": true, "being": true, "because": true, "against": true,
	"same": true, "many": true, "much": true, "any": true, "every": true,
}

// Generate frequency-ranks the non-stopword tokens of text and returns at
// most maxTags of them, highest frequency first, ties broken by first
// occurrence. Each tag gets its first letter capitalized.
func Generate(text string, maxTags int) []string {
	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}

	counts := make(map[string]int)
	var order []string
	for _, token := range search.Tokenize(text) {
		if len(token) < minTagLength || stopwords[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTags {
		order = order[:maxTags]
	}
	result := make([]string, len(order))
	for i, token := range order {
		result[i] = capitalize(token)
	}
	return result
}

func capitalize(word string) string {
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
