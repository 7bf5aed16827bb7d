package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrMalformedBody(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ErrMalformedBody{Cause: cause}
	assert.Equal(t, "malformed request body: unexpected EOF", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.ErrorIs(t, err, cause)
}

func TestErrBodyTooLarge(t *testing.T) {
	err := &ErrBodyTooLarge{Limit: 1024}
	assert.Equal(t, "request body exceeds 1024 bytes", err.Error())
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Fields: []FieldError{
		{Loc: []any{"body", "job_title"}, Msg: "field required", Type: "value_error.missing"},
		{Loc: []any{"body", "candidates", 2, "resume_text"}, Msg: "field required", Type: "value_error.missing"},
	}}
	assert.Equal(t, "validation error: body.job_title: field required; body.candidates.2.resume_text: field required", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("decoding: %w", &ErrBodyTooLarge{Limit: 1})
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestNamespaceLoc(t *testing.T) {
	tests := []struct {
		namespace string
		want      []any
	}{
		{"MatchRequest.job_title", []any{"body", "job_title"}},
		{"MatchRequest.required_skills[3]", []any{"body", "required_skills", 3}},
		{"RankRequest.candidates[0].resume_text", []any{"body", "candidates", 0, "resume_text"}},
		{"resume_text", []any{"body", "resume_text"}},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.want, namespaceLoc(tt.namespace))
		})
	}
}

func TestNewValidationError_FromValidator(t *testing.T) {
	text := "resume"
	req := types.RankRequest{Candidates: []types.Candidate{{ID: "a", ResumeText: &text}, {ID: "b"}}}

	verr := newValidationError(req.Validate())
	require.Len(t, verr.Fields, 2)

	assert.Equal(t, FieldError{Loc: []any{"body", "job_description"}, Msg: "field required", Type: "value_error.missing"}, verr.Fields[0])
	assert.Equal(t, FieldError{Loc: []any{"body", "candidates", 1, "resume_text"}, Msg: "field required", Type: "value_error.missing"}, verr.Fields[1])
}

func TestNewValidationError_Limits(t *testing.T) {
	text := "x"
	skills := make([]string, 101)
	for i := range skills {
		skills[i] = "go"
	}
	req := types.MatchRequest{ResumeText: &text, JobDescription: &text, JobTitle: &text, RequiredSkills: skills}

	verr := newValidationError(req.Validate())
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "ensure this value has at most 100 items", verr.Fields[0].Msg)
	assert.Equal(t, []any{"body", "required_skills"}, verr.Fields[0].Loc)
}

func TestNewValidationError_OtherError(t *testing.T) {
	verr := newValidationError(errors.New("bad"))
	assert.Equal(t, []FieldError{{Loc: []any{"body"}, Msg: "bad", Type: "value_error"}}, verr.Fields)
}
