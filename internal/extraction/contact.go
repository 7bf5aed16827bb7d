package extraction

import "regexp"

var emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// phonePatterns are tried in order: North American first, then generic
// international digit groups.
var phonePatterns = []*regexp.Regexp{
	compilePattern(`\+?1?\s*\(?(\d{3})\)?[\s.-]?(\d{3})[\s.-]?(\d{4})`),
	compilePattern(`\+?(\d{1,3})[\s.-]?(\d{3,4})[\s.-]?(\d{3,4})[\s.-]?(\d{3,4})`),
}

// Email returns the first email address in text, or nil.
func Email(text string) *string {
	if email := emailRegex.FindString(text); email != "" {
		return &email
	}
	return nil
}

// Phone returns the first phone number in text as written, or nil.
func Phone(text string) *string {
	for _, pattern := range phonePatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			phone := text[loc[0]:loc[1]]
			return &phone
		}
	}
	return nil
}
