// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResume is the structured view of one resume text.
type ParsedResume struct {
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	Education       []string `json:"education"`
	Keywords        []string `json:"keywords"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
}

// Importance tiers of a job-relevant skill.
const (
	ImportanceCritical  = "critical"  // explicitly listed as required
	ImportanceImportant = "important" // only detected in the job description
)

// SkillMatch reports whether one job-relevant skill was found in the resume.
type SkillMatch struct {
	Skill      string `json:"skill"`
	Found      bool   `json:"found"`
	Importance string `json:"importance"`
}

// MatchResult is the outcome of scoring a resume against a job description.
type MatchResult struct {
	MatchScore      int          `json:"match_score"`
	SkillsMatched   []string     `json:"skills_matched"`
	SkillsMissing   []string     `json:"skills_missing"`
	SkillDetails    []SkillMatch `json:"skill_details"`
	ExperienceMatch bool         `json:"experience_match"`
	KeywordMatches  int          `json:"keyword_matches"`
	Suggestions     []string     `json:"suggestions"`
	Strengths       []string     `json:"strengths"`
}

// RankedCandidate is one resume's position in a ranking against a single job.
type RankedCandidate struct {
	CandidateID string       `json:"candidate_id"`
	Rank        int          `json:"rank"`
	MatchScore  int          `json:"match_score"`
	Notes       string       `json:"notes"`
	Result      *MatchResult `json:"result"`
}

// SkillCoverage lists the candidates whose resume contains one job-relevant skill.
type SkillCoverage struct {
	Skill      string   `json:"skill"`
	Importance string   `json:"importance"`
	Category   string   `json:"category,omitempty"`
	Candidates []string `json:"candidates"`
}

// CandidateRanking lists candidates from best to worst match.
type CandidateRanking struct {
	Ranked   []RankedCandidate `json:"ranked"`
	Coverage []SkillCoverage   `json:"coverage"`
}
