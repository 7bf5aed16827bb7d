// Package ranking scores many resumes against one job and orders them by match.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultConcurrency is the number of resumes scored at once when Options leaves it unset.
const DefaultConcurrency = 4

// Options tunes RankCandidates.
type Options struct {
	// Concurrency bounds the number of resumes scored in parallel.
	Concurrency int
}

// RankCandidates scores every candidate against job and returns them from best
// to worst match. Equal scores are ordered by candidate ID. Candidates without
// an ID are assigned a random UUID. It stops early when ctx is cancelled.
func RankCandidates(
	ctx context.Context,
	scorer *matching.Scorer,
	job string,
	required []string,
	candidates []types.Candidate,
	opts Options,
) (*types.CandidateRanking, error) {
	if scorer == nil {
		return nil, fmt.Errorf("ranking requires a scorer")
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	ranked := make([]types.RankedCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, candidate := range candidates {
		id := candidate.ID
		if id == "" {
			id = uuid.NewString()
		}
		resume := ""
		if candidate.ResumeText != nil {
			resume = *candidate.ResumeText
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result := scorer.Match(resume, job, required)
			// each goroutine writes only its own slot
			ranked[i] = types.RankedCandidate{
				CandidateID: id,
				MatchScore:  result.MatchScore,
				Notes:       generateNotes(result),
				Result:      result,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking cancelled: %w", err)
	}

	// Sort by match score (descending), then candidate ID
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		return ranked[i].CandidateID < ranked[j].CandidateID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return &types.CandidateRanking{
		Ranked:   ranked,
		Coverage: BuildCoverage(ranked, scorer.Extractor().Taxonomy()),
	}, nil
}
