package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract structured data from a resume",
	Long:  "Parse a resume text or HTML file into ParsedResume JSON: skills, years of experience, education, keywords, email and phone.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
	parseRaw        bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.txt or .html)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary to stderr")
	parseCmd.Flags().BoolVar(&parseRaw, "raw", false, "Skip text normalization")

	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	text, err := loadText(parseInputFile, parseRaw)
	if err != nil {
		return err
	}

	parsed := scorer.Extractor().Parse(text)

	if parseVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintParsedResume(parsed)
	}

	return writeResult(cmd, parsed, schemas.ParsedResume, parseOutputFile)
}
