package domain

import "errors"

var (
	// ErrInvalidQuery signals a malformed search request.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrLanguageNotSupported signals a language tag with no configured index.
	ErrLanguageNotSupported = errors.New("language not supported")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrAllBackendsFailed signals that both retrieval backends failed.
	ErrAllBackendsFailed = errors.New("all retrieval backends failed")
)
