package extraction

import (
	"sort"
	"strings"
)

// Keyword list sizes.
const (
	DefaultKeywordCount = 20
	ScoringKeywordCount = 30
)

const minKeywordLength = 3

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true, "them": true,
	"their": true,
}

// Keywords returns up to topN of the most frequent tokens in text. A token is
// a whole word of at least three ASCII letters after lower-casing; words that
// contain digits, underscores or other letters are skipped entirely, as are
// stop-words. Equal counts keep first-seen order.
func Keywords(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, word := range words(strings.ToLower(text)) {
		if !isKeywordToken(word) || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// words splits text into maximal runs of word characters.
func words(text string) []string {
	var out []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, text[start:])
	}
	return out
}

func isKeywordToken(word string) bool {
	if len(word) < minKeywordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
