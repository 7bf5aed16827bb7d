package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills the matcher recognizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintTaxonomy(scorer.Extractor().Taxonomy())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
