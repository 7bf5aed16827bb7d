package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank several resumes against one job description",
	Long:  "Score every resume against the job description and print the candidates from best to worst match. Each candidate is named after its file.",
	RunE:  runRank,
}

var (
	rankJobFile     string
	rankResumeFiles []string
	rankRequired    []string
	rankConcurrency int
	rankOutputFile  string
	rankVerbose     bool
	rankRaw         bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job description file (.txt or .html)")
	rankCmd.Flags().StringArrayVarP(&rankResumeFiles, "resume", "r", nil, "Path to a resume file (repeatable)")
	rankCmd.Flags().StringSliceVar(&rankRequired, "require", nil, "Skill the job requires (repeatable or comma separated)")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Resumes scored in parallel (default from config, 4)")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a summary to stderr")
	rankCmd.Flags().BoolVar(&rankRaw, "raw", false, "Skip text normalization")

	_ = rankCmd.MarkFlagRequired("job")
	_ = rankCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	job, err := loadText(rankJobFile, rankRaw)
	if err != nil {
		return err
	}

	candidates := make([]types.Candidate, 0, len(rankResumeFiles))
	paths := make(map[string]string, len(rankResumeFiles))
	for _, path := range rankResumeFiles {
		id := candidateID(path)
		if prev, ok := paths[id]; ok {
			return fmt.Errorf("resumes %s and %s share the candidate ID %q; rename one of them", prev, path, id)
		}
		paths[id] = path

		text, err := loadText(path, rankRaw)
		if err != nil {
			return err
		}
		candidates = append(candidates, types.Candidate{ID: id, ResumeText: &text})
	}

	warnUnknownSkills(rankRequired)

	concurrency := rankConcurrency
	if concurrency <= 0 {
		concurrency = appConfig.RankConcurrency
	}

	result, err := ranking.RankCandidates(cmd.Context(), scorer, job, rankRequired, candidates,
		ranking.Options{Concurrency: concurrency})
	if err != nil {
		return err
	}

	if rankVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRanking(result)
	}

	return writeResult(cmd, result, schemas.Ranking, rankOutputFile)
}

// candidateID names a candidate after its file, without directory or extension.
func candidateID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
