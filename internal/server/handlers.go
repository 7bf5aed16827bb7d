package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Service identity reported by GET / and GET /health.
const (
	serviceTitle   = "AI Resume Matching Service"
	serviceVersion = "1.0.0"
	serviceName    = "ai-resume-matcher"
)

// SkillsResponse is the body of GET /skills.
type SkillsResponse struct {
	Categories []taxonomy.Category `json:"categories"`
	Total      int                 `json:"total"`
}

// handleRoot reports service identity
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"service": serviceTitle,
		"version": serviceVersion,
		"status":  "operational",
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// handleSkills lists the skill taxonomy the service matches against
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	tax := s.scorer.Extractor().Taxonomy()
	s.jsonResponse(w, http.StatusOK, SkillsResponse{
		Categories: tax.Categories(),
		Total:      tax.Len(),
	})
}

// handleParseResume extracts structured data from resume text
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := s.decodeRequest(w, r, &req, req.Validate); err != nil {
		s.requestError(w, r, err)
		return
	}

	s.guard(w, r, "Error parsing resume", func() any {
		return s.scorer.Extractor().Parse(*req.ResumeText)
	})
}

// handleMatch scores a resume against a job description
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := s.decodeRequest(w, r, &req, req.Validate); err != nil {
		s.requestError(w, r, err)
		return
	}

	s.guard(w, r, "Error calculating match", func() any {
		return s.scorer.Match(*req.ResumeText, *req.JobDescription, req.RequiredSkills)
	})
}

// handleRank scores several resumes against one job and orders them
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := s.decodeRequest(w, r, &req, req.Validate); err != nil {
		s.requestError(w, r, err)
		return
	}

	result, err := ranking.RankCandidates(r.Context(), s.scorer, *req.JobDescription, req.RequiredSkills,
		req.Candidates, ranking.Options{Concurrency: s.cfg.RankConcurrency})
	if err != nil {
		s.logger.Warn("ranking failed", "error", err, "request_id", logging.RequestID(r.Context()))
		s.errorResponse(w, http.StatusServiceUnavailable, "Error ranking candidates: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// decodeRequest reads a size-limited JSON body into dst and runs validate on it.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any, validate func() error) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.As(err, &maxBytesErr):
			return &ErrBodyTooLarge{Limit: maxBytesErr.Limit}
		case errors.As(err, &typeErr):
			return &ErrValidation{Fields: []FieldError{{
				Loc:  append([]any{"body"}, typeErr.Field),
				Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type),
				Type: "type_error",
			}}}
		case errors.Is(err, io.EOF):
			return &ErrMalformedBody{Cause: errors.New("request body is empty")}
		default:
			return &ErrMalformedBody{Cause: err}
		}
	}

	if err := validate(); err != nil {
		return newValidationError(err)
	}
	return nil
}

// requestError writes the response for a request that could not be decoded or validated.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	s.logger.Debug("rejected request", "path", r.URL.Path, "status", status, "error", err,
		"request_id", logging.RequestID(r.Context()))

	var invalid *ErrValidation
	if errors.As(err, &invalid) {
		s.errorResponse(w, status, invalid.Fields)
		return
	}
	s.errorResponse(w, status, err.Error())
}

// guard runs fn and writes its result, or a 500 carrying prefix and the panic
// message if fn panics.
func (s *Server) guard(w http.ResponseWriter, r *http.Request, prefix string, fn func() any) {
	var result any
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(prefix, "panic", fmt.Sprint(rec), "request_id", logging.RequestID(r.Context()))
				s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", prefix, rec))
			}
		}()
		result = fn()
	}()

	if result != nil {
		s.jsonResponse(w, http.StatusOK, result)
	}
}
