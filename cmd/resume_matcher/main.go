// Package main provides the resume_matcher command line tool and HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:               "resume_matcher",
	Short:             "Resume parsing and job matching",
	Long:              "resume_matcher extracts skills, experience, education and contact details from resumes and scores them against job descriptions, from the command line or over HTTP.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configPath   string
	taxonomyPath string
	logLevel     string
)

// Resolved by setup before any command runs.
var (
	appConfig config.Config
	scorer    *matching.Scorer
	logger    *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "Path to a custom skill taxonomy JSON file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// setup resolves configuration, installs the logger and builds the scorer.
// Flags win over the config file and environment.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	if taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	l, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("invalid logging settings: %w", err)
	}

	var tax *taxonomy.Taxonomy
	if cfg.TaxonomyPath != "" {
		tax, err = taxonomy.Load(cfg.TaxonomyPath)
		if err != nil {
			return err
		}
		l.Debug("loaded taxonomy", "path", cfg.TaxonomyPath, "skills", tax.Len())
	}

	appConfig = cfg
	scorer = matching.New(extraction.New(tax))
	logger = l
	return nil
}

func main() {
	// Load .env file if it exists
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
