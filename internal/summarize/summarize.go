package summarize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/founderlink/backend/internal/search"
)

// minSentenceLength filters out fragments left over from abbreviations
// and stray punctuation.
const minSentenceLength = 20

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// Summarize produces an extractive summary of at most maxSentences
// sentences. Sentences are scored by the sum of corpus-wide token
// frequencies of their tokens; the frequency table is built once over the
// full text. If the text has no more qualifying sentences than requested,
// it is returned unchanged. The summary gets a trailing "..." whenever it
// is shorter than the original.
func Summarize(text string, maxSentences int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if maxSentences <= 0 {
		maxSentences = 3
	}

	var sentences []string
	for _, fragment := range sentenceSplitter.Split(text, -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) > minSentenceLength {
			sentences = append(sentences, fragment)
		}
	}
	if len(sentences) <= maxSentences {
		return text
	}

	freq := make(map[string]int)
	for _, token := range search.Tokenize(text) {
		freq[token]++
	}

	type scored struct {
		sentence string
		score    int
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		total := 0
		for _, token := range search.Tokenize(sentence) {
			total += freq[token]
		}
		ranked[i] = scored{sentence: sentence, score: total}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	picked := make([]string, maxSentences)
	for i := 0; i < maxSentences; i++ {
		picked[i] = ranked[i].sentence
	}

	summary := strings.Join(picked, ". ")
	if len(summary) < len(text) {
		summary += "..."
	}
	return summary
}
