package ranking

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// BuildCoverage returns, for every job-relevant skill, the candidates whose
// resume contains it. Skills are sorted by name; candidates keep ranking order.
// A skill nobody has is listed with an empty candidate list. Skills known to
// tax carry their category.
func BuildCoverage(ranked []types.RankedCandidate, tax *taxonomy.Taxonomy) []types.SkillCoverage {
	index := make(map[string]int)
	coverage := make([]types.SkillCoverage, 0)

	for _, c := range ranked {
		if c.Result == nil {
			continue
		}
		for _, d := range c.Result.SkillDetails {
			i, ok := index[d.Skill]
			if !ok {
				i = len(coverage)
				index[d.Skill] = i
				entry := types.SkillCoverage{
					Skill:      d.Skill,
					Importance: d.Importance,
					Candidates: []string{},
				}
				if tax != nil {
					entry.Category, _ = tax.CategoryOf(d.Skill)
				}
				coverage = append(coverage, entry)
			}
			if d.Found {
				coverage[i].Candidates = append(coverage[i].Candidates, c.CandidateID)
			}
		}
	}

	sort.Slice(coverage, func(i, j int) bool {
		return coverage[i].Skill < coverage[j].Skill
	})
	return coverage
}

// CoverageRatio returns the fraction of candidates that have skill, or 0 when
// the skill is unknown or there are no candidates.
func CoverageRatio(coverage []types.SkillCoverage, skill string, total int) float64 {
	if total == 0 {
		return 0.0
	}
	for _, c := range coverage {
		if c.Skill == skill {
			return float64(len(c.Candidates)) / float64(total)
		}
	}
	return 0.0
}
