package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// writeResult validates v against the named schema and writes it as indented
// JSON to outPath, or to stdout when outPath is empty.
func writeResult(cmd *cobra.Command, v any, schema, outPath string) error {
	if err := schemas.ValidateValue(schema, v); err != nil {
		return fmt.Errorf("result does not validate against schema: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(jsonBytes)
		return err
	}

	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", outPath)
	return nil
}

// loadText reads an input file, logging where it came from.
func loadText(path string, raw bool) (string, error) {
	doc, err := ingestion.LoadFile(path, ingestion.Options{Raw: raw})
	if err != nil {
		return "", err
	}
	logger.Debug("loaded input",
		"source", doc.Metadata.Source,
		"format", doc.Metadata.Format,
		"characters", doc.Metadata.Characters,
		"hash", doc.Metadata.Hash)
	return doc.Text, nil
}

// warnUnknownSkills logs required skills outside the taxonomy. Such skills are
// never extracted from a resume, so they always count as missing.
func warnUnknownSkills(required []string) {
	tax := scorer.Extractor().Taxonomy()
	for _, skill := range required {
		if strings.TrimSpace(skill) != "" && !tax.Contains(skill) {
			logger.Warn("required skill is not in the taxonomy and will always be missing", "skill", skill)
		}
	}
}
