// Package db defines the search store facade over the FT.SEARCH-capable
// backend that serves both lexical and vector retrieval.
package db

import (
	"context"
	"time"
)

// Store is the database facade used by the repositories.
type Store interface {
	Pinger
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}

// KNNQuery describes a vector similarity search.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string
}

// TextQuery describes a keyword search over the index's text field.
type TextQuery struct {
	IndexName string
	Query     string
	TopK      int
	// ExactPhrase quotes the query so terms must match adjacently.
	ExactPhrase bool
	// Slop bounds the distance between query terms when positive.
	Slop int
	// HighlightOpen/HighlightClose wrap matched terms in returned text
	// fields when both are set.
	HighlightOpen  string
	HighlightClose string
	ReturnFields   []string
}

// SearchEntry is one raw search hit.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// SearchResult is a raw FT.SEARCH response.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// Op constants map to backend command names for error context.
const (
	OpSearch = "FT.SEARCH"
	OpPing   = "PING"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
