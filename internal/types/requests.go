package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so errors can point at the request body.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("unique_ids", uniqueCandidateIDs)
	return v
}

// uniqueCandidateIDs rejects a candidate list in which two candidates share an
// ID. Blank IDs are assigned later and never collide.
func uniqueCandidateIDs(fl validator.FieldLevel) bool {
	candidates, ok := fl.Field().Interface().([]Candidate)
	if !ok {
		return true
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.ID == "" {
			continue
		}
		if seen[c.ID] {
			return false
		}
		seen[c.ID] = true
	}
	return true
}

// ParseRequest is the body of POST /parse-resume.
// Text fields are pointers so that a missing field can be told apart from an empty one.
type ParseRequest struct {
	ResumeText *string `json:"resume_text" validate:"required"`
}

// MatchRequest is the body of POST /match.
type MatchRequest struct {
	ResumeText     *string  `json:"resume_text" validate:"required"`
	JobDescription *string  `json:"job_description" validate:"required"`
	JobTitle       *string  `json:"job_title" validate:"required"`
	RequiredSkills []string `json:"required_skills" validate:"max=100,dive,max=100"`
}

// Candidate is one resume submitted for ranking.
type Candidate struct {
	ID         string  `json:"id,omitempty" validate:"omitempty,max=128"`
	ResumeText *string `json:"resume_text" validate:"required"`
}

// RankRequest is the body of POST /rank.
type RankRequest struct {
	JobDescription *string     `json:"job_description" validate:"required"`
	RequiredSkills []string    `json:"required_skills" validate:"max=100,dive,max=100"`
	Candidates     []Candidate `json:"candidates" validate:"required,min=1,max=50,unique_ids,dive"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	return validate.Struct(r)
}
