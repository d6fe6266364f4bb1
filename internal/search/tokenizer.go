package search

import (
	"strings"
	"unicode"
)

// Tokenize splits text into normalized tokens (lowercase words)
func Tokenize(text string) []string {
	f := func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c)
	}
	fields := strings.FieldsFunc(text, f)
	var tokens []string
	for _, field := range fields {
		if len(field) > 2 { // Skip very short words
			tokens = append(tokens, strings.ToLower(field))
		}
	}
	return tokens
}
