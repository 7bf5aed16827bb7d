// Package extraction pulls structured facts (skills, experience, education,
// contact details, keywords) out of free-text resumes and job descriptions.
//
// Every function here is pure: it reads its argument and the immutable
// taxonomy only, so any number of calls may run concurrently.
package extraction

import (
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Extractor detects taxonomy skills and assembles ParsedResume values.
type Extractor struct {
	taxonomy *taxonomy.Taxonomy
	labels   []string
}

// New returns an Extractor over tax. A nil tax selects the built-in taxonomy.
func New(tax *taxonomy.Taxonomy) *Extractor {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Extractor{
		taxonomy: tax,
		labels:   tax.All(),
	}
}

// Taxonomy returns the taxonomy the extractor matches against.
func (e *Extractor) Taxonomy() *taxonomy.Taxonomy {
	return e.taxonomy
}

// Parse runs every extractor over text.
func (e *Extractor) Parse(text string) *types.ParsedResume {
	return &types.ParsedResume{
		Skills:          e.Skills(text),
		ExperienceYears: ExperienceYears(text),
		Education:       Education(text),
		Keywords:        Keywords(text, DefaultKeywordCount),
		Email:           Email(text),
		Phone:           Phone(text),
	}
}
