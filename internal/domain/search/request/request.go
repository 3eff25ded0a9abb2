// Package request defines the validated search query value type.
package request

import (
	"fmt"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength  = 1024
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request is a validated search query. Requests are built per incoming
// call, consumed synchronously and never persisted.
type Request struct {
	query      string
	language   string
	proximity  *int
	pageSize   int
	pageNumber int
}

// New validates and normalizes search parameters.
//
// language is an optional caller override; empty means "classify the
// query text". proximity follows the retrieval convention: nil means
// word-level matching, 0 means exact phrase, a positive value bounds the
// distance between query terms.
func New(query, language string, proximity *int, pageSize, pageNumber int) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if proximity != nil && *proximity < 0 {
		return Request{}, fmt.Errorf("%w: proximity_distance must be non-negative", domain.ErrInvalidQuery)
	}
	if pageSize < 0 {
		return Request{}, fmt.Errorf("%w: page_size must be non-negative", domain.ErrInvalidQuery)
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if pageNumber <= 0 {
		pageNumber = 1
	}

	return Request{
		query:      query,
		language:   language,
		proximity:  proximity,
		pageSize:   pageSize,
		pageNumber: pageNumber,
	}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Language returns the caller-supplied language tag, empty when the
// classifier should pick one.
func (r *Request) Language() string { return r.language }

// ExactPhrase reports whether the query must match as one exact phrase
// (proximity distance of zero).
func (r *Request) ExactPhrase() bool {
	return r.proximity != nil && *r.proximity == 0
}

// Proximity returns the maximum distance between query terms and whether
// one was supplied.
func (r *Request) Proximity() (int, bool) {
	if r.proximity == nil {
		return 0, false
	}
	return *r.proximity, true
}

// PageSize returns the number of hits per page.
func (r *Request) PageSize() int { return r.pageSize }

// PageNumber returns the 1-indexed page to return.
func (r *Request) PageNumber() int { return r.pageNumber }
