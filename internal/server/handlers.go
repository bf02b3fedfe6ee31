package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ScoreRequest represents the request body for /score
type ScoreRequest struct {
	Profile *types.CandidateProfile `json:"userProfile" validate:"required"`
	Listing *types.Listing          `json:"internship" validate:"required"`
	Corpus  []types.Listing         `json:"corpus,omitempty"`
}

// RecommendationsRequest represents the request body for /recommendations
type RecommendationsRequest struct {
	Profile *types.CandidateProfile `json:"userProfile,omitempty"`
	Options *types.RankOptions      `json:"options,omitempty"`
}

// BatchRequest represents the request body for /recommendations/batch
type BatchRequest struct {
	Profiles []types.CandidateProfile `json:"userProfiles" validate:"required,min=1,max=50"`
	Options  *types.RankOptions       `json:"options,omitempty"`
}

// ExplainRequest represents the request body for /explain
type ExplainRequest struct {
	Profile *types.CandidateProfile `json:"userProfile,omitempty"`
	Listing *types.Listing          `json:"internship" validate:"required"`
	Corpus  []types.Listing         `json:"corpus,omitempty"`
}

// BatchResponse represents the response for /recommendations/batch
type BatchResponse struct {
	Success bool                `json:"success"`
	Data    []types.BatchResult `json:"data"`
}

// handleScore scores one listing for one profile.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := s.engine.Score(req.Profile, req.Listing, req.Corpus)
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "data": result})
}

// handleRecommendations ranks the corpus for one profile.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts, ok := s.rankOptions(w, req.Options)
	if !ok {
		return
	}

	resp := s.engine.Rank(r.Context(), req.Profile, opts)
	if !resp.Success {
		s.jsonResponse(w, http.StatusBadGateway, resp)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleBatch ranks the corpus for several profiles.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts, ok := s.rankOptions(w, req.Options)
	if !ok {
		return
	}

	results := s.engine.RankBatch(r.Context(), req.Profiles, opts)
	s.jsonResponse(w, http.StatusOK, BatchResponse{Success: true, Data: results})
}

// handleExplain explains one listing for a profile.
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if !s.decode(w, r, &req) {
		return
	}

	explanation := s.engine.ExplainInCorpus(r.Context(), req.Profile, req.Listing, req.Corpus)
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "data": explanation})
}

// handleExplainByID explains a stored listing for the configured profile.
func (s *Server) handleExplainByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "listing id is required")
		return
	}

	explanation, err := s.engine.ExplainByID(r.Context(), nil, id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "data": explanation})
}

// handleFeedback records a feedback event.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if !s.decode(w, r, &req) {
		return
	}

	event := s.engine.RecordFeedback(req.Event())
	s.jsonResponse(w, http.StatusCreated, map[string]any{"success": true, "data": event})
}

// handleMetrics reports feedback totals and current weights.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "data": s.engine.Metrics()})
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validator.Struct(dst); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return false
	}
	return true
}

// rankOptions fills unset request options from the server defaults.
func (s *Server) rankOptions(w http.ResponseWriter, req *types.RankOptions) (types.RankOptions, bool) {
	opts := s.defaults
	if req != nil {
		if req.Limit > 0 {
			opts.Limit = req.Limit
		}
		if req.MinMatchScore != nil {
			opts.MinMatchScore = req.MinMatchScore
		}
		if req.Category != "" {
			opts.Category = req.Category
		}
		opts.IncludeExplanations = opts.IncludeExplanations || req.IncludeExplanations
	}

	if err := s.validator.Struct(&opts); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return opts, false
	}
	return opts, true
}
