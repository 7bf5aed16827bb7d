package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Score bands used in notes.
const (
	strongMatchScore   = 80
	moderateMatchScore = 50
)

// generateNotes creates a brief explanation of a candidate's position.
func generateNotes(result *types.MatchResult) string {
	var parts []string

	// Overall band
	switch {
	case result.MatchScore >= strongMatchScore:
		parts = append(parts, "Strong match")
	case result.MatchScore >= moderateMatchScore:
		parts = append(parts, "Moderate match")
	default:
		parts = append(parts, "Weak match")
	}

	// Skill match description
	if len(result.SkillsMatched) > 0 {
		parts = append(parts, fmt.Sprintf("Matched %s", strings.Join(result.SkillsMatched, ", ")))
	} else {
		parts = append(parts, "No skill matches")
	}

	// Critical gaps
	var criticalMissing []string
	for _, d := range result.SkillDetails {
		if !d.Found && d.Importance == types.ImportanceCritical {
			criticalMissing = append(criticalMissing, d.Skill)
		}
	}
	if len(criticalMissing) > 0 {
		parts = append(parts, fmt.Sprintf("Missing required %s", strings.Join(criticalMissing, ", ")))
	}

	if !result.ExperienceMatch {
		parts = append(parts, "Below required experience")
	}

	return strings.Join(parts, ". ")
}
