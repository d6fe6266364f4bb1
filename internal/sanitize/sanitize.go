package sanitize

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces markup-bearing text (pasted startup descriptions,
// investor bios) to plain text. Script and style bodies are dropped,
// tags removed, and whitespace collapsed. Plain text passes through
// untouched apart from whitespace normalization.
func StripHTML(input string) string {
	if !strings.ContainsRune(input, '<') {
		return cleanText(input)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var builder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return cleanText(builder.String())
			}
			// Malformed markup degrades to whatever text was gathered.
			return cleanText(builder.String())

		case html.StartTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					builder.WriteString(text + " ")
				}
			}
		}
	}
}

// cleanText removes excessive whitespace
func cleanText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
