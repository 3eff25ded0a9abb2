package search

import (
	"context"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/hit"
	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/request"
)

// Repository defines the retrieval backend contract for search.
type Repository interface {
	// SearchLexical runs a keyword search against the language's index.
	SearchLexical(
		ctx context.Context, language string, req *request.Request, topK int,
	) ([]hit.Hit, error)

	// SearchVector runs a kNN search against the language's index.
	SearchVector(
		ctx context.Context, language string, vector []float32, topK int,
	) ([]hit.Hit, error)
}

// Classifier tags query text with a supported language.
type Classifier interface {
	Classify(text, defaultLanguage string) string
	Supported(tag string) bool
}

// Embedder vectorizes the query for the vector backend.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
