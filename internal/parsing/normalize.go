// Package parsing provides the text normalization rules shared by the extractors and the scorer.
package parsing

import (
	"strings"
	"unicode"
)

// NormalizeSkillName folds a skill label to the form used for set arithmetic:
// trimmed and lower-cased. Blank input yields "".
func NormalizeSkillName(skillName string) string {
	return strings.ToLower(strings.TrimSpace(skillName))
}

// NormalizeSkillNames folds every label and drops blanks and duplicates,
// keeping first-seen order.
func NormalizeSkillNames(skillNames []string) []string {
	if len(skillNames) == 0 {
		return []string{}
	}

	normalized := make([]string, 0, len(skillNames))
	seen := make(map[string]bool, len(skillNames))
	for _, name := range skillNames {
		n := NormalizeSkillName(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}

	return normalized
}

// TitleCase upper-cases every cased character that follows an uncased one and
// lower-cases the rest. Digits and punctuation are uncased, so "ci/cd" becomes
// "Ci/Cd", "c++" becomes "C++" and "5years" becomes "5Years". Acronyms are not
// special-cased: "aws" becomes "Aws".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		if isCased(r) {
			if prevCased {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevCased = true
			continue
		}
		b.WriteRune(r)
		prevCased = false
	}

	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
