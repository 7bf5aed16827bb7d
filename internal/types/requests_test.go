package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ParseRequest
		wantErr bool
	}{
		{"text present", ParseRequest{ResumeText: strPtr("resume")}, false},
		{"empty text is allowed", ParseRequest{ResumeText: strPtr("")}, false},
		{"missing text", ParseRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchRequest_Validate_MissingFields(t *testing.T) {
	var req MatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"resume_text": "r"}`), &req))

	err := req.Validate()
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"job_description", "job_title"}, fields)
}

func TestMatchRequest_Validate_RequiredSkillsOptional(t *testing.T) {
	req := MatchRequest{
		ResumeText:     strPtr("r"),
		JobDescription: strPtr("j"),
		JobTitle:       strPtr(""),
	}
	assert.NoError(t, req.Validate())

	req.RequiredSkills = []string{"Go", strings.Repeat("x", 101)}
	assert.Error(t, req.Validate())
}

func TestRankRequest_Validate(t *testing.T) {
	req := RankRequest{JobDescription: strPtr("job")}
	assert.Error(t, req.Validate(), "candidates are required")

	req.Candidates = []Candidate{{ID: "a", ResumeText: strPtr("resume")}}
	assert.NoError(t, req.Validate())

	req.Candidates = append(req.Candidates, Candidate{ID: "b"})
	assert.Error(t, req.Validate(), "every candidate needs resume text")
}

func TestRankRequest_Validate_CandidateIDs(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr bool
	}{
		{"distinct", []string{"a", "b", "c"}, false},
		{"duplicate", []string{"a", "b", "a"}, true},
		{"blank ids may repeat", []string{"", "", "a"}, false},
		{"case sensitive", []string{"a", "A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RankRequest{JobDescription: strPtr("job")}
			for _, id := range tt.ids {
				req.Candidates = append(req.Candidates, Candidate{ID: id, ResumeText: strPtr("resume")})
			}

			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, "unique_ids", verrs[0].Tag())
			assert.Equal(t, "RankRequest.candidates", verrs[0].Namespace())
		})
	}
}

func TestParsedResume_JSONNulls(t *testing.T) {
	parsed := ParsedResume{
		Skills:    []string{},
		Education: []string{},
		Keywords:  []string{"hello"},
	}

	data, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"skills": [],
		"experience_years": null,
		"education": [],
		"keywords": ["hello"],
		"email": null,
		"phone": null
	}`, string(data))
}
