package extraction

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

const (
	educationContextBefore = 20
	educationContextAfter  = 30
)

// educationPatterns match degree and credential mentions. The abbreviated
// forms carry no word boundaries, so "bs" inside "jobs" also matches.
var educationPatterns = []*regexp.Regexp{
	compilePattern(`(?i)bachelor(?:'s)?\s+(?:of\s+)?(?:science|arts|engineering)?`),
	compilePattern(`(?i)master(?:'s)?\s+(?:of\s+)?(?:science|arts|engineering)?`),
	compilePattern(`(?i)phd|doctorate|doctoral`),
	compilePattern(`(?i)mba|master\s+of\s+business\s+administration`),
	compilePattern(`(?i)b\.?s\.?|m\.?s\.?|b\.?sc\.?|m\.?sc\.?`),
}

// Education returns a title-cased context snippet around every degree mention:
// 20 characters before and 30 after the match, clamped to the text. Duplicate
// snippets collapse; the result is sorted.
func Education(text string) []string {
	seen := make(map[string]bool)
	snippets := make([]string, 0)

	for _, pattern := range educationPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start := moveBack(text, loc[0], educationContextBefore)
			end := moveForward(text, loc[1], educationContextAfter)
			snippet := parsing.TitleCase(trimSpace(text[start:end]))
			if seen[snippet] {
				continue
			}
			seen[snippet] = true
			snippets = append(snippets, snippet)
		}
	}

	sort.Strings(snippets)
	return snippets
}

// moveBack returns the byte offset n characters before pos, stopping at 0.
func moveBack(text string, pos, n int) int {
	for i := 0; i < n && pos > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= size
	}
	return pos
}

// moveForward returns the byte offset n characters after pos, stopping at len(text).
func moveForward(text string, pos, n int) int {
	for i := 0; i < n && pos < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}
