package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// experiencePatterns are tried in order; the first pattern with any match wins,
// and within a pattern the leftmost occurrence wins. So "5 years experience ...
// 3 years in development" reports 5 even when the later statement comes first
// in the text, because pattern (a) is tried before pattern (c).
var experiencePatterns = []*regexp.Regexp{
	// (a) "5+ years of experience"
	compilePattern(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	// (b) "experience: 5 years"
	compilePattern(`experience[:\s]+(\d+)\+?\s*years?`),
	// (c) "5 years in software"
	compilePattern(`(\d+)\+?\s*years?\s+in\s+(?:software|development|programming)`),
}

// ExperienceYears returns the number of years from the first explicit
// years-of-experience statement in text, or nil when there is none.
func ExperienceYears(text string) *int {
	lower := strings.ToLower(text)

	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			// out of int range
			continue
		}
		return &years
	}

	return nil
}
