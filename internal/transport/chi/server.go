// Package chi exposes the search service over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/request"
	"github.com/rajatjain/cataloguesearch-sub001/internal/metrics"
	healthuc "github.com/rajatjain/cataloguesearch-sub001/internal/usecase/health"
	searchuc "github.com/rajatjain/cataloguesearch-sub001/internal/usecase/search"
)

// SearchService answers search requests.
type SearchService interface {
	Search(ctx context.Context, req *request.Request) (searchuc.Response, error)
}

// HealthService reports component readiness.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers.
type Server struct {
	search SearchService
	health HealthService
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search SearchService, health HealthService, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/search", s.handleSearch)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// searchRequest is the POST /search body.
type searchRequest struct {
	Query             string `json:"query"`
	Language          string `json:"language,omitempty"`
	ProximityDistance *int   `json:"proximity_distance,omitempty"`
	PageSize          int    `json:"page_size,omitempty"`
	PageNumber        int    `json:"page_number,omitempty"`
}

// searchResult is one fused hit on the wire.
type searchResult struct {
	DocumentID    string            `json:"document_id"`
	PageNumber    int               `json:"page_number"`
	LexicalScore  float64           `json:"lexical_score"`
	VectorScore   float64           `json:"vector_score"`
	CombinedScore float64           `json:"combined_score"`
	Snippet       string            `json:"snippet,omitempty"`
	Highlights    []string          `json:"highlights,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// searchResponse is the POST /search response body.
type searchResponse struct {
	Results    []searchResult `json:"results"`
	TotalCount int            `json:"total_count"`
	PageNumber int            `json:"page_number"`
	PageSize   int            `json:"page_size"`
	Language   string         `json:"language"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	req, err := request.New(
		body.Query, body.Language, body.ProximityDistance,
		body.PageSize, body.PageNumber,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.search.Search(r.Context(), &req)
	if err != nil {
		lang := body.Language
		if lang == "" {
			lang = "unknown"
		}
		metrics.SearchRequestsTotal.WithLabelValues(lang, "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.SearchRequestsTotal.WithLabelValues(resp.Language, "success").Inc()

	results := make([]searchResult, len(resp.Matches))
	for i, m := range resp.Matches {
		results[i] = searchResult{
			DocumentID:    m.Hit.DocumentID(),
			PageNumber:    m.Hit.PageNumber(),
			LexicalScore:  m.Hit.LexicalScore(),
			VectorScore:   m.Hit.VectorScore(),
			CombinedScore: m.Hit.CombinedScore(),
			Snippet:       m.Hit.Snippet(),
			Highlights:    m.Terms,
			Metadata:      m.Hit.Metadata(),
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results:    results,
		TotalCount: resp.Total,
		PageNumber: req.PageNumber(),
		PageSize:   req.PageSize(),
		Language:   resp.Language,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// handleDomainError maps domain sentinels onto HTTP statuses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrLanguageNotSupported):
		writeError(w, http.StatusBadRequest, "language_not_supported", err.Error())
	case errors.Is(err, domain.ErrEmbeddingProviderError),
		errors.Is(err, domain.ErrAllBackendsFailed):
		writeError(w, http.StatusBadGateway, "backend_unavailable", "retrieval backends unavailable")
	default:
		s.logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
