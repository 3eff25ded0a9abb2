package domain

import "context"

// EmbeddingResult is an embedding vector with provider token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker is implemented by components that can verify their own availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
