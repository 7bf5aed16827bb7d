// Package matching scores a resume against a job description.
package matching

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Score weights. The three components add up to at most 100.
const (
	skillWeight             = 60.0
	experienceMatchScore    = 20.0
	experienceMismatchScore = 10.0
	keywordWeight           = 20.0
	keywordOverlapDivisor   = 10.0

	// neutralSkillRatio is used when the job names no recognizable skill.
	neutralSkillRatio = 0.5

	minScore = 0
	maxScore = 100
)

// Scorer computes MatchResults. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	extractor *extraction.Extractor
}

// New returns a Scorer that extracts skills with e. A nil e selects the built-in taxonomy.
func New(e *extraction.Extractor) *Scorer {
	if e == nil {
		e = extraction.New(nil)
	}
	return &Scorer{extractor: e}
}

// Extractor returns the extractor the scorer uses.
func (s *Scorer) Extractor() *extraction.Extractor {
	return s.extractor
}

// skillComparison holds the lower-case skill sets of one resume/job pair.
type skillComparison struct {
	resume   map[string]bool
	required map[string]bool
	job      []string // job-description skills plus required skills, sorted
	matched  []string
	missing  []string
}

func (s *Scorer) compareSkills(resume, job string, required []string) *skillComparison {
	c := &skillComparison{
		resume:   toSet(s.extractor.SkillLabels(resume)),
		required: toSet(parsing.NormalizeSkillNames(required)),
	}

	jobSet := toSet(s.extractor.SkillLabels(job))
	for skill := range c.required {
		jobSet[skill] = true
	}

	c.job = sortedKeys(jobSet)
	c.matched = make([]string, 0, len(c.job))
	c.missing = make([]string, 0, len(c.job))
	for _, skill := range c.job {
		if c.resume[skill] {
			c.matched = append(c.matched, skill)
		} else {
			c.missing = append(c.missing, skill)
		}
	}
	return c
}

// ratio returns the fraction of job-relevant skills found in the resume.
func (c *skillComparison) ratio() float64 {
	if len(c.job) == 0 {
		return neutralSkillRatio
	}
	return float64(len(c.matched)) / float64(len(c.job))
}

// details reports every job-relevant skill, sorted by display name.
func (c *skillComparison) details() []types.SkillMatch {
	details := make([]types.SkillMatch, 0, len(c.job))
	for _, skill := range c.job {
		importance := types.ImportanceImportant
		if c.required[skill] {
			importance = types.ImportanceCritical
		}
		details = append(details, types.SkillMatch{
			Skill:      taxonomy.DisplayName(skill),
			Found:      c.resume[skill],
			Importance: importance,
		})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Skill < details[j].Skill
	})
	return details
}

// computeExperienceMatch reports false only when both texts state a number
// of years and the resume states fewer. It also returns the job's years.
func computeExperienceMatch(resume, job string) (bool, *int) {
	resumeYears := extraction.ExperienceYears(resume)
	jobYears := extraction.ExperienceYears(job)
	if resumeYears == nil || jobYears == nil {
		return true, jobYears
	}
	return *resumeYears >= *jobYears, jobYears
}

// computeKeywordOverlap counts the top keywords the two texts share.
func computeKeywordOverlap(resume, job string) int {
	resumeKeywords := toSet(extraction.Keywords(resume, extraction.ScoringKeywordCount))

	overlap := 0
	for _, kw := range extraction.Keywords(job, extraction.ScoringKeywordCount) {
		if resumeKeywords[kw] {
			overlap++
		}
	}
	return overlap
}

// computeFinalScore combines the weighted components, truncates toward zero
// and clamps to [0, 100].
func computeFinalScore(skillRatio float64, experienceMatch bool, keywordOverlap int) int {
	// each product is rounded to float64 before the sum
	skillScore := float64(skillRatio * skillWeight)

	experienceScore := experienceMismatchScore
	if experienceMatch {
		experienceScore = experienceMatchScore
	}

	keywordScore := float64(math.Min(float64(keywordOverlap)/keywordOverlapDivisor, 1.0) * keywordWeight)

	score := int(skillScore + experienceScore + keywordScore)
	return max(minScore, min(maxScore, score))
}

// Match scores resume against job. required lists skills the job explicitly
// asks for; they count even when the job text never mentions them. Entries
// are compared case-insensitively and blank entries are ignored.
func (s *Scorer) Match(resume, job string, required []string) *types.MatchResult {
	skills := s.compareSkills(resume, job, required)
	experienceMatch, jobYears := computeExperienceMatch(resume, job)
	keywordOverlap := computeKeywordOverlap(resume, job)
	score := computeFinalScore(skills.ratio(), experienceMatch, keywordOverlap)

	matched := displayNames(skills.matched)
	missing := displayNames(skills.missing)

	f := feedback{
		missing:         missing,
		matchedCount:    len(matched),
		resumeSkills:    len(skills.resume),
		experienceMatch: experienceMatch,
		jobYears:        jobYears,
		keywordOverlap:  keywordOverlap,
		score:           score,
	}

	return &types.MatchResult{
		MatchScore:      score,
		SkillsMatched:   matched,
		SkillsMissing:   missing,
		SkillDetails:    skills.details(),
		ExperienceMatch: experienceMatch,
		KeywordMatches:  keywordOverlap,
		Suggestions:     f.suggestions(),
		Strengths:       f.strengths(),
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// displayNames maps labels to their display form and sorts the result.
func displayNames(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		out = append(out, taxonomy.DisplayName(label))
	}
	sort.Strings(out)
	return out
}
