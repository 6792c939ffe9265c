package quizgen

import (
	"regexp"
	"strings"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// CleanText normalizes page text coming out of the document loaders.
// PDF extraction in particular produces runs of newlines and hard line
// breaks inside paragraphs. Runs of newlines are collapsed to a single
// newline, then any newline without another newline adjacent to it is
// replaced with a space.
func CleanText(text string) string {
	text = newlineRuns.ReplaceAllString(text, "\n")

	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			prevNL := i > 0 && runes[i-1] == '\n'
			nextNL := i+1 < len(runes) && runes[i+1] == '\n'
			if !prevNL && !nextNL {
				b.WriteRune(' ')
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExtractContent joins the given pages into a single cleaned string.
func ExtractContent(pages []string) string {
	return CleanText(strings.Join(pages, " "))
}
