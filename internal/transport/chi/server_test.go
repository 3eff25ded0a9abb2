package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/hit"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/request"
	healthuc "github.com/rajatjain/cataloguesearch-sub001/internal/usecase/health"
	searchuc "github.com/rajatjain/cataloguesearch-sub001/internal/usecase/search"
)

type mockSearch struct {
	resp    searchuc.Response
	err     error
	lastReq *request.Request
}

func (m *mockSearch) Search(_ context.Context, req *request.Request) (searchuc.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report {
	return m.report
}

func newTestServer(search SearchService, health HealthService) *chirouter.Mux {
	s := NewServer(search, health, zap.NewNop())
	r := chirouter.NewRouter()
	s.Register(r)
	return r
}

func TestHandleSearch_OK(t *testing.T) {
	fused := hit.NewFused(
		hit.Key{DocumentID: "doc1", PageNumber: 3},
		10, 5, 1.0,
		"the <em>soul</em>",
		map[string]string{"granth": "Samaysar"},
	)
	search := &mockSearch{
		resp: searchuc.Response{
			Matches:  []searchuc.Match{{Hit: fused, Terms: []string{"soul"}}},
			Total:    42,
			Language: "hi",
		},
	}
	r := newTestServer(search, &mockHealth{})

	body := `{"query":"atma","page_size":10,"page_number":2}`
	req := httptest.NewRequest("POST", "/search", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var resp searchResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.TotalCount != 42 || resp.Language != "hi" {
		t.Errorf("envelope: got total=%d lang=%q", resp.TotalCount, resp.Language)
	}
	if resp.PageNumber != 2 || resp.PageSize != 10 {
		t.Errorf("pagination echo: got page=%d size=%d", resp.PageNumber, resp.PageSize)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("results: got %d, want 1", len(resp.Results))
	}
	got := resp.Results[0]
	if got.DocumentID != "doc1" || got.PageNumber != 3 {
		t.Errorf("identity: got %s#%d", got.DocumentID, got.PageNumber)
	}
	if got.CombinedScore != 1.0 || got.LexicalScore != 10 || got.VectorScore != 5 {
		t.Errorf("scores: got %f/%f/%f", got.LexicalScore, got.VectorScore, got.CombinedScore)
	}
	if len(got.Highlights) != 1 || got.Highlights[0] != "soul" {
		t.Errorf("highlights: got %v", got.Highlights)
	}
	if got.Metadata["granth"] != "Samaysar" {
		t.Errorf("metadata: got %v", got.Metadata)
	}
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	r := newTestServer(&mockSearch{}, &mockHealth{})

	req := httptest.NewRequest("POST", "/search", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	r := newTestServer(&mockSearch{}, &mockHealth{})

	req := httptest.NewRequest("POST", "/search", strings.NewReader(`{"query":""}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "validation_failed" {
		t.Errorf("code: got %q", errResp.Code)
	}
}

func TestHandleSearch_UnsupportedLanguage_400(t *testing.T) {
	search := &mockSearch{err: fmt.Errorf("%w: %q", domain.ErrLanguageNotSupported, "fr")}
	r := newTestServer(search, &mockHealth{})

	body := `{"query":"atma","language":"fr"}`
	req := httptest.NewRequest("POST", "/search", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != "language_not_supported" {
		t.Errorf("code: got %q", errResp.Code)
	}
}

func TestHandleSearch_BackendFailure_502(t *testing.T) {
	search := &mockSearch{err: domain.ErrAllBackendsFailed}
	r := newTestServer(search, &mockHealth{})

	req := httptest.NewRequest("POST", "/search", strings.NewReader(`{"query":"atma"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rr.Code)
	}
}

func TestHandleSearch_UnknownError_500(t *testing.T) {
	search := &mockSearch{err: errors.New("boom")}
	r := newTestServer(search, &mockHealth{})

	req := httptest.NewRequest("POST", "/search", strings.NewReader(`{"query":"atma"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		health := &mockHealth{report: healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
		}}
		r := newTestServer(&mockSearch{}, health)

		req := httptest.NewRequest("GET", "/health", http.NoBody)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})

	t.Run("degraded", func(t *testing.T) {
		health := &mockHealth{report: healthuc.Report{
			Status: healthuc.Degraded,
			Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckError},
		}}
		r := newTestServer(&mockSearch{}, health)

		req := httptest.NewRequest("GET", "/health", http.NoBody)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("status: got %d, want 503", rr.Code)
		}
	})
}
