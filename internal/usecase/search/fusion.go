package search

import (
	"sort"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/hit"
)

// Default fusion weights. Lexical matches carry slightly more weight
// than semantic neighbours for this corpus.
const (
	DefaultLexicalWeight = 0.6
	DefaultVectorWeight  = 0.4
)

// Strategy combines a hit's normalized per-source scores into one
// ranking score. Merge, normalization and pagination are fixed; only the
// combination step is pluggable.
type Strategy interface {
	Combine(lexical, vector float64) float64
}

// WeightedSum is the default fusion strategy: a weighted sum of the
// normalized lexical and vector scores.
type WeightedSum struct {
	Lexical float64
	Vector  float64
}

// Combine implements Strategy.
func (w WeightedSum) Combine(lexical, vector float64) float64 {
	return w.Lexical*lexical + w.Vector*vector
}

// fusedRecord accumulates per-source scores for one identity key during
// the merge.
type fusedRecord struct {
	key          hit.Key
	lexicalScore float64
	vectorScore  float64
	snippet      string
	metadata     map[string]string
}

// Fuse merges the ranked hit lists of the lexical and vector backends
// into one deduplicated, normalized, sorted ranking and returns the
// requested 1-indexed page plus the total number of fused records.
//
// A key appearing more than once within one backend's list keeps that
// backend's maximum score; the first occurrence wins snippet and
// metadata. Scores are normalized by each source's maximum over the
// merged set, so a source that contributed nothing scores 0 everywhere
// instead of dividing by zero. Ties in the combined score resolve to
// first-seen order: records are kept in insertion order and sorted
// stably, never relying on map iteration order.
func Fuse(lexical, vector []hit.Hit, strategy Strategy, pageSize, pageNumber int) ([]hit.Fused, int) {
	index := make(map[hit.Key]*fusedRecord)
	records := make([]*fusedRecord, 0, len(lexical)+len(vector))

	merge := func(hits []hit.Hit, isLexical bool) {
		for i := range hits {
			h := &hits[i]
			rec, ok := index[h.Key()]
			if !ok {
				rec = &fusedRecord{
					key:      h.Key(),
					snippet:  h.Snippet(),
					metadata: h.Metadata(),
				}
				index[h.Key()] = rec
				records = append(records, rec)
			}
			if isLexical {
				rec.lexicalScore = max(rec.lexicalScore, h.Score())
			} else {
				rec.vectorScore = max(rec.vectorScore, h.Score())
			}
		}
	}
	merge(lexical, true)
	merge(vector, false)

	var maxLexical, maxVector float64
	for _, rec := range records {
		maxLexical = max(maxLexical, rec.lexicalScore)
		maxVector = max(maxVector, rec.vectorScore)
	}

	fused := make([]hit.Fused, len(records))
	for i, rec := range records {
		var normLexical, normVector float64
		if maxLexical > 0 {
			normLexical = rec.lexicalScore / maxLexical
		}
		if maxVector > 0 {
			normVector = rec.vectorScore / maxVector
		}
		fused[i] = hit.NewFused(
			rec.key, rec.lexicalScore, rec.vectorScore,
			strategy.Combine(normLexical, normVector),
			rec.snippet, rec.metadata,
		)
	}

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].CombinedScore() > fused[j].CombinedScore()
	})

	return paginate(fused, pageSize, pageNumber), len(fused)
}

// paginate slices out the 1-indexed page, clipped to the list bounds. A
// page beyond the data is empty, not an error.
func paginate(fused []hit.Fused, pageSize, pageNumber int) []hit.Fused {
	if pageSize <= 0 || pageNumber <= 0 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(fused) {
		return nil
	}
	end := start + pageSize
	if end > len(fused) {
		end = len(fused)
	}
	return fused[start:end]
}
