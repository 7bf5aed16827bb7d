package matching

import (
	"fmt"
	"strings"
)

// Feedback thresholds.
const (
	maxMissingInSuggestion = 5
	minKeywordOverlap      = 5
	minResumeSkills        = 5
	strongSkillMatch       = 5
	strongKeywordOverlap   = 10
	excellentScore         = 80
)

const (
	fallbackSuggestion = "Resume looks great! Consider tailoring it more to this specific role."
	fallbackStrength   = "Resume shows potential - highlight your achievements more clearly"
)

// feedback carries the facts the suggestion and strength rules look at.
type feedback struct {
	missing         []string // display names, sorted
	matchedCount    int
	resumeSkills    int
	experienceMatch bool
	jobYears        *int
	keywordOverlap  int
	score           int
}

// suggestions returns the improvement advice. It is never empty.
func (f feedback) suggestions() []string {
	out := make([]string, 0, 4)

	if len(f.missing) > 0 {
		top := f.missing[:min(len(f.missing), maxMissingInSuggestion)]
		out = append(out, fmt.Sprintf("Add these missing skills: %s", strings.Join(top, ", ")))
	}

	if !f.experienceMatch && f.jobYears != nil {
		out = append(out, fmt.Sprintf("Highlight %d+ years of relevant experience more prominently", *f.jobYears))
	}

	if f.keywordOverlap < minKeywordOverlap {
		out = append(out, "Use more keywords from the job description in your resume")
	}

	if f.resumeSkills < minResumeSkills {
		out = append(out, "Add more technical skills to strengthen your profile")
	}

	if len(out) == 0 {
		out = append(out, fallbackSuggestion)
	}
	return out
}

// strengths returns what the resume does well. It is never empty.
func (f feedback) strengths() []string {
	out := make([]string, 0, 4)

	if f.matchedCount > strongSkillMatch {
		out = append(out, fmt.Sprintf("Strong skill match: %d relevant skills found", f.matchedCount))
	}

	if f.experienceMatch {
		out = append(out, "Experience level meets or exceeds requirements")
	}

	if f.keywordOverlap > strongKeywordOverlap {
		out = append(out, "Good keyword alignment with job description")
	}

	if f.score >= excellentScore {
		out = append(out, "Excellent overall match - highly qualified candidate")
	}

	if len(out) == 0 {
		out = append(out, fallbackStrength)
	}
	return out
}
