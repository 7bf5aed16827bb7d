// Package ingestion reads resumes and job descriptions from files and normalizes their text.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean line by line
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	result := strings.Join(lines, "\n")

	// 3. Remove excessive blank lines (max 2 consecutive)
	result = blankLineRun.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings, bullets and indentation.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	// Normalize spaces in content (multiple spaces → single)
	return strings.Repeat(" ", indent) + whitespaceRun.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// Options controls LoadFile.
type Options struct {
	// Raw skips CleanText so the extractors see the file exactly as written
	// (after HTML-to-text conversion for HTML files).
	Raw bool
}

// Document is a loaded input file.
type Document struct {
	Text     string
	Metadata *Metadata
}

// LoadFile reads a resume or job description. Files ending in .html or .htm
// are converted to text first.
func LoadFile(path string, opts Options) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	format := FormatText
	if isHTMLPath(path) {
		format = FormatHTML
		text, err = ExtractHTMLText(text)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	if !opts.Raw {
		text = CleanText(text)
	}

	return &Document{
		Text:     text,
		Metadata: NewMetadata(text, path, format),
	}, nil
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
