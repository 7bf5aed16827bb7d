package extraction

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// Skills returns the display form of every taxonomy skill found in text,
// sorted and deduplicated.
func (e *Extractor) Skills(text string) []string {
	labels := e.SkillLabels(text)

	seen := make(map[string]bool, len(labels))
	skills := make([]string, 0, len(labels))
	for _, label := range labels {
		display := taxonomy.DisplayName(label)
		if seen[display] {
			continue
		}
		seen[display] = true
		skills = append(skills, display)
	}

	sort.Strings(skills)
	return skills
}

// SkillLabels returns the lower-case taxonomy labels found in text, in taxonomy order.
// A label matches only as a whole word or phrase: "java" does not match inside "javascript".
func (e *Extractor) SkillLabels(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0)
	for _, label := range e.labels {
		if containsWord(lower, label) {
			found = append(found, label)
		}
	}
	return found
}

// containsWord reports whether phrase occurs in text with a word boundary at
// both ends. A boundary sits between a word and a non-word character (or the
// text edge), so a phrase that starts or ends with punctuation, such as "c++",
// needs a word character on the far side of that edge.
func containsWord(text, phrase string) bool {
	if phrase == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)

	for offset := 0; offset <= len(text)-len(phrase); {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(phrase)

		if boundaryBefore(text, start, first) && boundaryAfter(text, end, last) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func boundaryBefore(text string, pos int, first rune) bool {
	prevWord := false
	if pos > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:pos])
		prevWord = isWordRune(prev)
	}
	return prevWord != isWordRune(first)
}

func boundaryAfter(text string, pos int, last rune) bool {
	nextWord := false
	if pos < len(text) {
		next, _ := utf8.DecodeRuneInString(text[pos:])
		nextWord = isWordRune(next)
	}
	return isWordRune(last) != nextWord
}

// isWordRune reports whether r is a word character: a letter, a number or an underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
