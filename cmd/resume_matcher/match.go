package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Score a resume against a job description and print the MatchResult JSON: score, matched and missing skills, suggestions and strengths.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchRequired   []string
	matchOutputFile string
	matchVerbose    bool
	matchRaw        bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file (.txt or .html)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description file (.txt or .html)")
	matchCmd.Flags().StringSliceVar(&matchRequired, "require", nil, "Skill the job requires (repeatable or comma separated)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a summary to stderr")
	matchCmd.Flags().BoolVar(&matchRaw, "raw", false, "Skip text normalization")

	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	resume, err := loadText(matchResumeFile, matchRaw)
	if err != nil {
		return err
	}
	job, err := loadText(matchJobFile, matchRaw)
	if err != nil {
		return err
	}

	warnUnknownSkills(matchRequired)
	result := scorer.Match(resume, job, matchRequired)
	logger.Debug("scored resume", "resume", matchResumeFile, "job", matchJobFile, "score", result.MatchScore)

	if matchVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintMatchResult(result)
	}

	return writeResult(cmd, result, schemas.MatchResult, matchOutputFile)
}
