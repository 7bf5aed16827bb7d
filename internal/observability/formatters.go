// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n characters, ending in "..." when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// writeList writes up to maxItemsToShow items as bullets.
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orNone(s *string) string {
	if s == nil {
		return "(none)"
	}
	return strings.TrimSpace(*s)
}

// PrintParsedResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Email:      %s\n", orNone(parsed.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orNone(parsed.Phone)))
	if parsed.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience: %d years\n", *parsed.ExperienceYears))
	} else {
		sb.WriteString("Experience: (not stated)\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(parsed.Skills)))
	writeList(&sb, parsed.Skills)

	if len(parsed.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		writeList(&sb, parsed.Education)
	}

	if len(parsed.Keywords) > 0 {
		sb.WriteString("\nTop keywords:\n")
		sb.WriteString("  " + strings.Join(parsed.Keywords[:min(len(parsed.Keywords), 8)], ", ") + "\n")
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown, skill gaps and advice of a match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match score:      %d/100\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("Experience match: %t\n", result.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Shared keywords:  %d\n", result.KeywordMatches))
	sb.WriteString("\n")

	if len(result.SkillsMatched) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.SkillsMatched)))
		writeList(&sb, result.SkillsMatched)
	}

	if len(result.SkillsMissing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(result.SkillsMissing)))
		for _, d := range result.SkillDetails {
			if d.Found {
				continue
			}
			marker := ""
			if d.Importance == types.ImportanceCritical {
				marker = " [required]"
			}
			sb.WriteString(fmt.Sprintf("  ✗ %s%s\n", d.Skill, marker))
		}
	}

	sb.WriteString("\nSuggestions:\n")
	for _, s := range result.Suggestions {
		sb.WriteString(fmt.Sprintf("  → %s\n", s))
	}

	sb.WriteString("\nStrengths:\n")
	for _, s := range result.Strengths {
		sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates and the skill coverage across all of them.
func (p *Printer) PrintRanking(result *types.CandidateRanking) {
	if result == nil || len(result.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(result.Ranked)))

	count := min(len(result.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := result.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.Rank, c.CandidateID))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", c.MatchScore))
		if c.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", c.Notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Coverage) > 0 {
		sb.WriteString("\nSkill coverage:\n")
		total := len(result.Ranked)
		for _, c := range result.Coverage {
			pct := ranking.CoverageRatio(result.Coverage, c.Skill, total) * 100
			sb.WriteString(fmt.Sprintf("  %-20s %d/%d (%.0f%%)\n", c.Skill, len(c.Candidates), total, pct))
		}
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTaxonomy lists every category and its skills in display form.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTaxonomy(tax *taxonomy.Taxonomy) {
	if tax == nil {
		return
	}

	for _, c := range tax.Categories() {
		names := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			names = append(names, taxonomy.DisplayName(s))
		}
		fmt.Fprintf(p.out, "%s (%d)\n", c.Name, len(c.Skills))
		fmt.Fprintf(p.out, "  %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(p.out, "\n%d skills\n", tax.Len())
}
