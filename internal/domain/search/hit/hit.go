// Package hit defines the retrieval hit value types shared by the
// retrieval repositories and the fusion ranker.
package hit

import "strconv"

// Key identifies a hit. A document matched on several pages yields one
// hit per page, each with its own key.
type Key struct {
	DocumentID string
	PageNumber int
}

// String renders the key as "docID#page" for logging.
func (k Key) String() string {
	return k.DocumentID + "#" + strconv.Itoa(k.PageNumber)
}

// Hit is a single hit from one retrieval backend.
type Hit struct {
	key      Key
	score    float64
	snippet  string
	metadata map[string]string
}

// New creates a retrieval hit.
func New(documentID string, pageNumber int, score float64, snippet string, metadata map[string]string) Hit {
	return Hit{
		key:      Key{DocumentID: documentID, PageNumber: pageNumber},
		score:    score,
		snippet:  snippet,
		metadata: metadata,
	}
}

// Key returns the hit identity key.
func (h *Hit) Key() Key { return h.key }

// DocumentID returns the source document identifier.
func (h *Hit) DocumentID() string { return h.key.DocumentID }

// PageNumber returns the matched page within the document.
func (h *Hit) PageNumber() int { return h.key.PageNumber }

// Score returns the backend relevance score.
func (h *Hit) Score() float64 { return h.score }

// Snippet returns the marked-up snippet text.
func (h *Hit) Snippet() string { return h.snippet }

// Metadata returns passthrough fields copied from the backend.
func (h *Hit) Metadata() map[string]string { return h.metadata }

// Fused is a merged hit carrying per-source and combined scores.
type Fused struct {
	key           Key
	lexicalScore  float64
	vectorScore   float64
	combinedScore float64
	snippet       string
	metadata      map[string]string
}

// NewFused creates a fused hit.
func NewFused(
	key Key, lexicalScore, vectorScore, combinedScore float64,
	snippet string, metadata map[string]string,
) Fused {
	return Fused{
		key:           key,
		lexicalScore:  lexicalScore,
		vectorScore:   vectorScore,
		combinedScore: combinedScore,
		snippet:       snippet,
		metadata:      metadata,
	}
}

// Key returns the hit identity key.
func (f *Fused) Key() Key { return f.key }

// DocumentID returns the source document identifier.
func (f *Fused) DocumentID() string { return f.key.DocumentID }

// PageNumber returns the matched page within the document.
func (f *Fused) PageNumber() int { return f.key.PageNumber }

// LexicalScore returns the best raw score from the lexical backend (0 if absent).
func (f *Fused) LexicalScore() float64 { return f.lexicalScore }

// VectorScore returns the best raw score from the vector backend (0 if absent).
func (f *Fused) VectorScore() float64 { return f.vectorScore }

// CombinedScore returns the fused ranking score.
func (f *Fused) CombinedScore() float64 { return f.combinedScore }

// Snippet returns the marked-up snippet text.
func (f *Fused) Snippet() string { return f.snippet }

// Metadata returns passthrough fields from whichever backend produced the hit first.
func (f *Fused) Metadata() map[string]string { return f.metadata }
