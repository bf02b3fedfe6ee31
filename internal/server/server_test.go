package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/logging"
	"github.com/jonathan/internship-matcher/internal/ranking"
	"github.com/jonathan/internship-matcher/internal/server/ratelimit"
	"github.com/jonathan/internship-matcher/internal/types"
)

func testListings() []types.Listing {
	return []types.Listing{
		{
			ID:           "frontend",
			Title:        "Frontend Developer Intern",
			Description:  "Software programming internship for students",
			Category:     "technology",
			Location:     "Singapore",
			Skills:       []string{"React", "JavaScript", "HTML", "CSS"},
			Requirements: []string{"Entry level"},
		},
		{
			ID:           "finance",
			Title:        "Finance Analyst Intern",
			Description:  "Budget forecasting spreadsheets",
			Category:     "finance",
			Location:     "Jakarta",
			Skills:       []string{"Excel"},
			Requirements: []string{"Senior analyst mentorship"},
		},
	}
}

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:       "student-1",
		Skills:   []string{"React", "JavaScript", "HTML", "CSS"},
		Major:    "Computer Science",
		Location: "Singapore",
	}
}

func newTestServer(t *testing.T, rl *ratelimit.Config) *Server {
	t.Helper()
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}
	engine := ranking.NewEngine(catalog.NewListings(testListings()), ranking.DefaultConfig(),
		ranking.WithProfileProvider(staticProfile{testProfile()}))
	s := New(Config{Port: 0, RateLimit: rl}, engine, logging.NewNop())
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

type staticProfile struct {
	p *types.CandidateProfile
}

func (s staticProfile) Profile(_ context.Context) (*types.CandidateProfile, error) {
	return s.p, nil
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleScore(t *testing.T) {
	s := newTestServer(t, nil)
	listing := testListings()[0]

	w := doJSON(t, s.Handler(), http.MethodPost, "/score", ScoreRequest{Profile: testProfile(), Listing: &listing})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool              `json:"success"`
		Data    types.ScoreResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Greater(t, resp.Data.TotalScore, 50)
	require.NotNil(t, resp.Data.Breakdown)
	assert.Equal(t, 100, resp.Data.Breakdown.SkillMatch)
}

func TestHandleScore_MissingListing(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodPost, "/score", map[string]any{"userProfile": testProfile()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Listing")
}

func TestHandleScore_InvalidJSON(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestHandleRecommendations(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodPost, "/recommendations", RecommendationsRequest{
		Options: &types.RankOptions{IncludeExplanations: true},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.RankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "frontend", resp.Data[0].Listing.ID)
	assert.NotNil(t, resp.Data[0].Explanation)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, 2, resp.Metadata.TotalEvaluated)
	assert.Equal(t, 4, resp.Metadata.Profile.SkillsCount)
}

func TestHandleRecommendations_CategoryFilter(t *testing.T) {
	s := newTestServer(t, nil)
	zero := 0

	w := doJSON(t, s.Handler(), http.MethodPost, "/recommendations", RecommendationsRequest{
		Profile: testProfile(),
		Options: &types.RankOptions{Category: "Finance", MinMatchScore: &zero},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.RankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "finance", resp.Data[0].Listing.ID)
}

func TestHandleRecommendations_InvalidOptions(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodPost, "/recommendations", RecommendationsRequest{
		Options: &types.RankOptions{Limit: 500},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRecommendations_ProviderFailure(t *testing.T) {
	engine := ranking.NewEngine(nil, ranking.DefaultConfig())
	s := New(Config{RateLimit: &ratelimit.Config{}}, engine, nil)
	t.Cleanup(s.rateLimiter.Stop)

	w := doJSON(t, s.Handler(), http.MethodPost, "/recommendations", RecommendationsRequest{})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "failed to fetch listings")
}

func TestHandleBatch(t *testing.T) {
	s := newTestServer(t, nil)
	other := testProfile()
	other.ID = "student-2"
	other.Skills = []string{"Excel"}

	w := doJSON(t, s.Handler(), http.MethodPost, "/recommendations/batch", BatchRequest{
		Profiles: []types.CandidateProfile{*testProfile(), *other},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "student-1", resp.Data[0].ProfileID)
	assert.Equal(t, "student-2", resp.Data[1].ProfileID)
	assert.True(t, resp.Data[1].Recommendations.Success)
}

func TestHandleBatch_Empty(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodPost, "/recommendations/batch", BatchRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleExplain(t *testing.T) {
	s := newTestServer(t, nil)
	listing := testListings()[0]

	w := doJSON(t, s.Handler(), http.MethodPost, "/explain", ExplainRequest{
		Profile: testProfile(),
		Listing: &listing,
		Corpus:  testListings(),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data types.Explanation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Explanations)
	assert.Equal(t, ranking.Label(resp.Data.Score), resp.Data.Recommendation)
}

func TestHandleExplain_ProfileFromProvider(t *testing.T) {
	s := newTestServer(t, nil)
	listing := testListings()[0]

	w := doJSON(t, s.Handler(), http.MethodPost, "/explain", ExplainRequest{Listing: &listing, Corpus: testListings()})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data types.Explanation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	expected := s.engine.ExplainInCorpus(context.Background(), testProfile(), &listing, testListings())
	assert.Equal(t, expected.Score, resp.Data.Score)
	assert.Equal(t, expected.Recommendation, resp.Data.Recommendation)
	assert.Greater(t, resp.Data.Score, 50)
}

func TestHandleExplain_DefaultProfile(t *testing.T) {
	engine := ranking.NewEngine(catalog.NewListings(testListings()), ranking.DefaultConfig())
	s := New(Config{RateLimit: &ratelimit.Config{}}, engine, nil)
	t.Cleanup(s.rateLimiter.Stop)
	listing := testListings()[0]

	w := doJSON(t, s.Handler(), http.MethodPost, "/explain", ExplainRequest{Listing: &listing})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data types.Explanation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	expected := engine.Explain(context.Background(), types.DefaultProfile(), &listing)
	assert.Equal(t, expected.Score, resp.Data.Score)
	assert.Greater(t, resp.Data.Score, 0)
}

func TestHandleExplainByID(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodGet, "/listings/frontend/explain", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "explanations")
}

func TestHandleExplainByID_NotFound(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodGet, "/listings/missing/explain", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "missing")
}

func TestHandleFeedbackAndMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	score := 85.0

	w := doJSON(t, s.Handler(), http.MethodPost, "/feedback", types.FeedbackRequest{
		Type:       "applied",
		MatchScore: &score,
		ListingID:  "frontend",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data types.FeedbackEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.ID)
	assert.WithinDuration(t, time.Now(), created.Data.Timestamp, time.Minute)

	w = doJSON(t, s.Handler(), http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var metrics struct {
		Data types.Metrics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	assert.Equal(t, 1, metrics.Data.TotalFeedback)
	assert.Equal(t, 1, metrics.Data.FeedbackBreakdown["applied"])
	assert.InDelta(t, 0.41, metrics.Data.CurrentWeights.SkillMatch, 1e-9)
}

func TestHandleFeedback_MalformedEventsRecorded(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodPost, "/feedback", map[string]any{"matchScore": 80})
	assert.Equal(t, http.StatusCreated, w.Code)

	for i := 0; i < 10; i++ {
		w = doJSON(t, s.Handler(), http.MethodPost, "/feedback", map[string]any{"type": "applied", "matchScore": 150})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	metrics := s.engine.Metrics()
	assert.Equal(t, 11, metrics.TotalFeedback)
	assert.Equal(t, 1, metrics.FeedbackBreakdown[""])
	assert.Equal(t, 10, metrics.FeedbackBreakdown["applied"])
	assert.InDelta(t, 0.45, metrics.CurrentWeights.SkillMatch, 1e-9)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s.Handler(), http.MethodOptions, "/recommendations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, &ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: ratelimit.DefaultEndpointConfigs(),
	})
	h := s.Handler()
	body := BatchRequest{Profiles: []types.CandidateProfile{*testProfile()}}

	for i := 0; i < 2; i++ {
		w := doJSON(t, h, http.MethodPost, "/recommendations/batch", body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	}

	w := doJSON(t, h, http.MethodPost, "/recommendations/batch", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	w = doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "type", Message: "required"}, http.StatusBadRequest},
		{"not found", &ranking.ListingNotFoundError{ID: "x"}, http.StatusNotFound},
		{"fetch failed", &ranking.CorpusFetchError{Cause: assert.AnError}, http.StatusBadGateway},
		{"fetch timeout", &ranking.CorpusFetchError{Cause: context.DeadlineExceeded}, http.StatusGatewayTimeout},
		{"wrapped not found", fmt.Errorf("explain: %w", &ranking.ListingNotFoundError{ID: "x"}), http.StatusNotFound},
		{"other", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
