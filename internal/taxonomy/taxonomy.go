// Package taxonomy holds the catalog of recognized skill labels grouped by category.
//
// A Taxonomy is immutable once built and is shared by pointer between
// extractors; it is safe for concurrent use.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// Category is a named, ordered group of lower-case skill labels.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Taxonomy is an ordered set of categories and the flattened All-Skills list.
type Taxonomy struct {
	categories []Category
	all        []string
	categoryOf map[string]string
}

// defaultCategories is the built-in catalog.
var defaultCategories = []Category{
	{Name: "programming_languages", Skills: []string{
		"python", "javascript", "typescript", "java", "c++", "c#", "ruby", "go",
		"rust", "swift", "kotlin", "php", "scala", "r", "matlab", "sql",
	}},
	{Name: "frameworks", Skills: []string{
		"react", "angular", "vue", "nextjs", "django", "flask", "fastapi",
		"spring", "express", "nodejs", "rails", "laravel", ".net", "flutter",
	}},
	{Name: "databases", Skills: []string{
		"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra",
		"dynamodb", "oracle", "sqlite", "mariadb",
	}},
	{Name: "cloud", Skills: []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
		"github actions", "gitlab ci", "circleci",
	}},
	{Name: "data_science", Skills: []string{
		"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib",
		"keras", "spark", "hadoop", "tableau", "power bi",
	}},
	{Name: "other", Skills: []string{
		"git", "agile", "scrum", "rest api", "graphql", "microservices",
		"ci/cd", "tdd", "design patterns", "oop", "functional programming",
	}},
}

// Default returns the built-in taxonomy. It is built on first use and shared afterwards.
var Default = sync.OnceValue(func() *Taxonomy {
	return New(defaultCategories)
})

// New builds a taxonomy from categories. Labels are trimmed and lower-cased;
// blank labels are dropped and a label listed more than once keeps only its
// first occurrence (across all categories). The input is not retained.
func New(categories []Category) *Taxonomy {
	t := &Taxonomy{
		categories: make([]Category, 0, len(categories)),
		categoryOf: make(map[string]string),
	}

	for _, c := range categories {
		kept := make([]string, 0, len(c.Skills))
		for _, skill := range c.Skills {
			label := parsing.NormalizeSkillName(skill)
			if label == "" {
				continue
			}
			if _, dup := t.categoryOf[label]; dup {
				continue
			}
			t.categoryOf[label] = c.Name
			t.all = append(t.all, label)
			kept = append(kept, label)
		}
		t.categories = append(t.categories, Category{Name: c.Name, Skills: kept})
	}

	return t
}

// LoadError is returned when a taxonomy file cannot be used.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

type document struct {
	Categories []Category `json:"categories"`
}

// Load reads a taxonomy JSON file of the form
// {"categories": [{"name": "...", "skills": ["..."]}]}.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data)
}

// Parse builds a taxonomy from JSON content. name is used in error messages.
func Parse(name string, data []byte) (*Taxonomy, error) {
	if err := schemas.ValidateBytes(schemas.Taxonomy, data); err != nil {
		return nil, &LoadError{Path: name, Message: "does not match schema", Cause: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: name, Message: "invalid JSON", Cause: err}
	}

	t := New(doc.Categories)
	if len(t.all) == 0 {
		return nil, &LoadError{Path: name, Message: "no skills defined"}
	}
	return t, nil
}

// All returns the flattened All-Skills list in category order.
func (t *Taxonomy) All() []string {
	out := make([]string, len(t.all))
	copy(out, t.all)
	return out
}

// Len returns the number of distinct labels.
func (t *Taxonomy) Len() int {
	return len(t.all)
}

// Categories returns a copy of the categories in their original order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		skills := make([]string, len(c.Skills))
		copy(skills, c.Skills)
		out[i] = Category{Name: c.Name, Skills: skills}
	}
	return out
}

// Contains reports whether skill is a known label (case-insensitive).
func (t *Taxonomy) Contains(skill string) bool {
	_, ok := t.categoryOf[parsing.NormalizeSkillName(skill)]
	return ok
}

// CategoryOf returns the category a label belongs to.
func (t *Taxonomy) CategoryOf(skill string) (string, bool) {
	c, ok := t.categoryOf[parsing.NormalizeSkillName(skill)]
	return c, ok
}

// DisplayName returns the display form of a label, e.g. "ci/cd" -> "Ci/Cd".
func DisplayName(label string) string {
	return parsing.TitleCase(label)
}
