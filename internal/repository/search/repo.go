// Package search adapts the raw store search results to domain hits.
package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rajatjain/cataloguesearch-sub001/internal/db"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/hit"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/request"
)

// Emphasis markers wrapped around matched terms in returned snippets.
const (
	HighlightOpen  = "<em>"
	HighlightClose = "</em>"
)

// Index field names written by the external indexer.
const (
	fieldText       = "text"
	fieldVector     = "vector"
	fieldDocumentID = "document_id"
	fieldPageNumber = "page_number"
)

// store is the consumer interface for search operations.
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a search repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// indexName returns the FT index for a language. Each language has its
// own index because its pages are analyzed with a different tokenizer.
func (r *Repo) indexName(language string) string {
	return fmt.Sprintf("%spages_%s:idx", r.keyPrefix, language)
}

// SearchLexical runs a keyword search against the language's index and
// returns hits with emphasis-marked snippets.
func (r *Repo) SearchLexical(
	ctx context.Context, language string, req *request.Request, topK int,
) ([]hit.Hit, error) {
	q := &db.TextQuery{
		IndexName:      r.indexName(language),
		Query:          req.Query(),
		TopK:           topK,
		ExactPhrase:    req.ExactPhrase(),
		HighlightOpen:  HighlightOpen,
		HighlightClose: HighlightClose,
	}
	if slop, ok := req.Proximity(); ok && slop > 0 {
		q.Slop = slop
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search lexical %s: %w", language, err)
	}

	return entriesToHits(sr), nil
}

// SearchVector runs a kNN search against the language's index. Vector
// snippets carry no emphasis markers, so they contribute no highlight
// terms downstream.
func (r *Repo) SearchVector(
	ctx context.Context, language string, vector []float32, topK int,
) ([]hit.Hit, error) {
	q := &db.KNNQuery{
		IndexName: r.indexName(language),
		Vector:    vector,
		K:         topK,
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search vector %s: %w", language, err)
	}

	return entriesToHits(sr), nil
}

// entriesToHits converts raw entries into domain hits. Identity fields
// missing from an entry resolve to an "unknown" identity instead of the
// entry being dropped.
func entriesToHits(sr *db.SearchResult) []hit.Hit {
	if sr == nil || sr.Total == 0 {
		return nil
	}

	hits := make([]hit.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		docID := "unknown"
		pageNumber := 0
		var snippet string
		metadata := make(map[string]string)

		for k, v := range entry.Fields {
			switch k {
			case fieldText:
				snippet = v
			case fieldDocumentID:
				docID = v
			case fieldPageNumber:
				if n, err := strconv.Atoi(v); err == nil && n >= 0 {
					pageNumber = n
				}
			case fieldVector:
				// binary blob, not passthrough metadata
			default:
				metadata[k] = v
			}
		}

		hits = append(hits, hit.New(docID, pageNumber, entry.Score, snippet, metadata))
	}

	return hits
}
