package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLText_JobDescriptionSelector(t *testing.T) {
	html := `<html><body>
		<header>Acme Careers</header>
		<div class="job-description">
			<h2>Requirements</h2>
			<ul><li>Python</li><li>Kubernetes</li></ul>
		</div>
		<footer>© Acme</footer>
	</body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	assert.Equal(t, "Requirements\nPython\nKubernetes", text)
	assert.NotContains(t, text, "Acme")
}

func TestExtractHTMLText_RemovesScriptAndStyle(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head><body>
		<main><p>Go developer</p><script>var tracking = true;</script></main>
	</body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	assert.Equal(t, "Go developer", text)
}

func TestExtractHTMLText_FallbackToBody(t *testing.T) {
	text, err := ExtractHTMLText(`<html><body><p>Jane Smith</p><p>jane@example.com</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith\njane@example.com", text)
}

func TestExtractHTMLText_BlockBoundaries(t *testing.T) {
	text, err := ExtractHTMLText(`<body><div>Python</div><div>Go</div>SQL<br>Rust</body>`)
	require.NoError(t, err)

	assert.Equal(t, "Python\nGo\nSQL\nRust", text)
}
