package extraction

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills_WholeWordOnly(t *testing.T) {
	e := New(nil)

	skills := e.Skills("javascript developer")
	assert.Equal(t, []string{"Javascript"}, skills)
	assert.NotContains(t, skills, "Java")

	assert.Equal(t, []string{"Java", "Javascript"}, e.Skills("expert in java and javascript"))
}

func TestSkills_MultiWordAndPunctuation(t *testing.T) {
	e := New(nil)

	skills := e.Skills("Experienced with AWS, Docker and CI/CD pipelines; REST API design")
	assert.Equal(t, []string{"Aws", "Ci/Cd", "Docker", "Rest Api"}, skills)
}

func TestSkills_PunctuationEdges(t *testing.T) {
	e := New(nil)

	// a label that ends in punctuation needs a word character after it
	assert.Empty(t, e.Skills("c++ developer"))
	assert.Equal(t, []string{"C++"}, e.Skills("modern c++17 codebase"))

	// and one that starts with punctuation needs a word character before it
	assert.Empty(t, e.Skills(".net core"))
	assert.Equal(t, []string{".Net"}, e.Skills("asp.net core"))
}

func TestSkills_CaseInsensitive(t *testing.T) {
	e := New(nil)
	assert.Equal(t, []string{"Kubernetes", "Python"}, e.Skills("PYTHON and KuBeRnEtEs"))
}

func TestSkills_SingleLetterLabel(t *testing.T) {
	e := New(nil)

	assert.Equal(t, []string{"R"}, e.Skills("statistics in R"))
	assert.Empty(t, e.Skills("rrr"))
}

func TestSkills_EmptyText(t *testing.T) {
	e := New(nil)

	skills := e.Skills("")
	require.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestSkills_SortedAndUnique(t *testing.T) {
	e := New(nil)

	skills := e.Skills("Go, go, GO. Docker and docker. AWS")
	assert.Equal(t, []string{"Aws", "Docker", "Go"}, skills)
	assert.IsNonDecreasing(t, skills)
}

func TestSkills_SubsetOfTaxonomy(t *testing.T) {
	e := New(nil)
	text := "python java go rust sql react django aws docker kubernetes git agile scrum"

	for _, label := range e.SkillLabels(text) {
		assert.True(t, e.Taxonomy().Contains(label), label)
	}
	assert.Len(t, e.Skills(text), len(e.SkillLabels(text)))
}

func TestSkillLabels_TaxonomyOrder(t *testing.T) {
	e := New(nil)

	labels := e.SkillLabels("docker, python and react")
	assert.Equal(t, []string{"python", "react", "docker"}, labels)
}

func TestSkills_CustomTaxonomy(t *testing.T) {
	tax := taxonomy.New([]taxonomy.Category{
		{Name: "tools", Skills: []string{"Bazel", "nix"}},
	})
	e := New(tax)

	assert.Equal(t, []string{"Bazel", "Nix"}, e.Skills("builds with bazel and nix, not python"))
	assert.Same(t, tax, e.Taxonomy())
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   bool
	}{
		{"exact", "go", "go", true},
		{"prefix of word", "golang", "go", false},
		{"suffix of word", "django", "go", false},
		{"second occurrence", "golang and go", "go", true},
		{"underscore joins words", "go_lang", "go", false},
		{"digit joins words", "go2", "go", false},
		{"phrase", "we use github actions daily", "github actions", true},
		{"phrase split", "github, actions", "github actions", false},
		{"slash label", "ci/cd", "ci/cd", true},
		{"non-ascii neighbour", "égo", "go", false},
		{"empty phrase", "anything", "", false},
		{"phrase longer than text", "go", "golang", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsWord(tt.text, tt.phrase))
		})
	}
}
