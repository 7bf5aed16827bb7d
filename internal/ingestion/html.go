package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelector matches elements that never hold resume or job content.
const noiseSelector = "nav, footer, script, style, noscript, iframe, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// ContentSelectors returns selectors tried, in order, to find the main content
// of a resume or job posting page.
func ContentSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		".job-details",
		"[data-testid='job-description']",
		".resume",
		"#resume",
		"main",
		"article",
		".content",
		"#content",
	}
}

// blockElements end a line of text.
const blockElements = "p, div, li, br, h1, h2, h3, h4, h5, h6, tr, section, article, header, ul, ol"

// ExtractHTMLText parses HTML and returns the main body text, one block element per line.
// It removes noise elements, then finds content using ContentSelectors.
// If no content selector matches, it falls back to the body element.
func ExtractHTMLText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	// Keep block boundaries as line breaks so "Python</li><li>Go" stays two words
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})

	var mainContent *goquery.Selection
	for _, selector := range ContentSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims every line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
