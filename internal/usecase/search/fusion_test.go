package search

import (
	"math"
	"testing"

	"github.com/rajatjain/cataloguesearch-sub001/internal/domain/search/hit"
)

func makeHit(docID string, page int, score float64) hit.Hit {
	return hit.New(docID, page, score, "", nil)
}

func defaultStrategy() Strategy {
	return WeightedSum{Lexical: DefaultLexicalWeight, Vector: DefaultVectorWeight}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFuse_WeightedScores(t *testing.T) {
	// doc1 leads both lists, doc2 only appears in the vector list.
	lexical := []hit.Hit{makeHit("doc1", 1, 10)}
	vector := []hit.Hit{makeHit("doc1", 1, 5), makeHit("doc2", 1, 5)}

	page, total := Fuse(lexical, vector, defaultStrategy(), 10, 1)

	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 results, got %d", len(page))
	}

	if page[0].DocumentID() != "doc1" || page[1].DocumentID() != "doc2" {
		t.Fatalf("expected [doc1, doc2], got [%s, %s]",
			page[0].DocumentID(), page[1].DocumentID())
	}
	if !almostEqual(page[0].CombinedScore(), 1.0) {
		t.Errorf("doc1 combined score: got %f, want 1.0", page[0].CombinedScore())
	}
	if !almostEqual(page[1].CombinedScore(), 0.4) {
		t.Errorf("doc2 combined score: got %f, want 0.4", page[1].CombinedScore())
	}
}

func TestFuse_KeysUniqueAndComplete(t *testing.T) {
	lexical := []hit.Hit{
		makeHit("a", 1, 3), makeHit("a", 2, 2), makeHit("b", 1, 1),
	}
	vector := []hit.Hit{
		makeHit("a", 1, 0.9), makeHit("c", 7, 0.5),
	}

	page, total := Fuse(lexical, vector, defaultStrategy(), 100, 1)

	if total != 4 {
		t.Fatalf("expected 4 fused records, got %d", total)
	}

	seen := make(map[hit.Key]int)
	for i := range page {
		seen[page[i].Key()]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("key %s appears %d times", k, n)
		}
	}
	for _, want := range []hit.Key{
		{DocumentID: "a", PageNumber: 1},
		{DocumentID: "a", PageNumber: 2},
		{DocumentID: "b", PageNumber: 1},
		{DocumentID: "c", PageNumber: 7},
	} {
		if seen[want] != 1 {
			t.Errorf("key %s missing from fused set", want)
		}
	}
}

func TestFuse_DuplicateKeyKeepsMaxScorePerSource(t *testing.T) {
	// The same page matched on two fragments: best score wins.
	lexical := []hit.Hit{
		hit.New("a", 1, 2, "first snippet", map[string]string{"granth": "one"}),
		hit.New("a", 1, 8, "second snippet", map[string]string{"granth": "two"}),
	}

	page, total := Fuse(lexical, nil, defaultStrategy(), 10, 1)

	if total != 1 {
		t.Fatalf("expected 1 fused record, got %d", total)
	}
	if got := page[0].LexicalScore(); got != 8 {
		t.Errorf("lexical score: got %f, want 8", got)
	}
	// First occurrence wins non-score fields.
	if page[0].Snippet() != "first snippet" {
		t.Errorf("snippet: got %q, want first occurrence", page[0].Snippet())
	}
	if page[0].Metadata()["granth"] != "one" {
		t.Errorf("metadata: got %q, want first occurrence", page[0].Metadata()["granth"])
	}
}

func TestFuse_CombinedScoreRange(t *testing.T) {
	lexical := []hit.Hit{
		makeHit("a", 1, 42), makeHit("b", 1, 17), makeHit("c", 1, 0),
	}
	vector := []hit.Hit{
		makeHit("b", 1, 0.8), makeHit("d", 1, 0.2),
	}

	page, _ := Fuse(lexical, vector, defaultStrategy(), 100, 1)

	for i := range page {
		s := page[i].CombinedScore()
		if s < 0 || s > 1 {
			t.Errorf("combined score %f for %s out of [0,1]", s, page[i].Key())
		}
	}
}

func TestFuse_SortedDescendingAndDeterministic(t *testing.T) {
	lexical := []hit.Hit{
		makeHit("a", 1, 5), makeHit("b", 1, 5), makeHit("c", 1, 5),
	}
	vector := []hit.Hit{
		makeHit("d", 1, 3), makeHit("e", 1, 3),
	}

	first, _ := Fuse(lexical, vector, defaultStrategy(), 100, 1)

	for i := 1; i < len(first); i++ {
		if first[i].CombinedScore() > first[i-1].CombinedScore() {
			t.Fatalf("not sorted descending at %d", i)
		}
	}

	// Ties resolve to first-seen order, identically on every run.
	wantOrder := []string{"a", "b", "c", "d", "e"}
	for run := 0; run < 10; run++ {
		got, _ := Fuse(lexical, vector, defaultStrategy(), 100, 1)
		for i := range got {
			if got[i].DocumentID() != wantOrder[i] {
				t.Fatalf("run %d: position %d got %s, want %s",
					run, i, got[i].DocumentID(), wantOrder[i])
			}
		}
	}
}

func TestFuse_PagesPartitionFullList(t *testing.T) {
	var lexical, vector []hit.Hit
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		lexical = append(lexical, makeHit(id, 1, float64(len(id))))
	}
	vector = append(vector, makeHit("h", 1, 0.5), makeHit("a", 1, 0.9))

	full, total := Fuse(lexical, vector, defaultStrategy(), 100, 1)
	if total != 8 {
		t.Fatalf("expected 8 records, got %d", total)
	}

	const k = 3
	var concat []hit.Fused
	for pageNum := 1; pageNum <= (total+k-1)/k; pageNum++ {
		page, pageTotal := Fuse(lexical, vector, defaultStrategy(), k, pageNum)
		if pageTotal != total {
			t.Errorf("page %d: total %d, want %d", pageNum, pageTotal, total)
		}
		concat = append(concat, page...)
	}

	if len(concat) != len(full) {
		t.Fatalf("concatenated pages have %d records, want %d", len(concat), len(full))
	}
	for i := range concat {
		if concat[i].Key() != full[i].Key() {
			t.Errorf("position %d: got %s, want %s", i, concat[i].Key(), full[i].Key())
		}
	}
}

func TestFuse_PageBeyondData(t *testing.T) {
	lexical := []hit.Hit{makeHit("a", 1, 1), makeHit("b", 1, 2)}

	page, total := Fuse(lexical, nil, defaultStrategy(), 10, 99)

	if total != 2 {
		t.Errorf("total: got %d, want 2", total)
	}
	if len(page) != 0 {
		t.Errorf("expected empty page, got %d results", len(page))
	}
}

func TestFuse_ZeroPageSize(t *testing.T) {
	lexical := []hit.Hit{makeHit("a", 1, 1)}

	page, total := Fuse(lexical, nil, defaultStrategy(), 0, 1)

	if total != 1 {
		t.Errorf("total: got %d, want 1", total)
	}
	if len(page) != 0 {
		t.Errorf("expected empty page for page size 0, got %d", len(page))
	}
}

func TestFuse_OneSourceEmpty(t *testing.T) {
	t.Run("no vector hits", func(t *testing.T) {
		lexical := []hit.Hit{makeHit("a", 1, 4), makeHit("b", 1, 2)}

		page, total := Fuse(lexical, nil, defaultStrategy(), 10, 1)
		if total != 2 {
			t.Fatalf("total: got %d, want 2", total)
		}
		// Vector max is 0: its contribution is forced to 0, no division error.
		if !almostEqual(page[0].CombinedScore(), DefaultLexicalWeight) {
			t.Errorf("top score: got %f, want %f", page[0].CombinedScore(), DefaultLexicalWeight)
		}
		if page[0].VectorScore() != 0 {
			t.Errorf("vector score: got %f, want 0", page[0].VectorScore())
		}
	})

	t.Run("both empty", func(t *testing.T) {
		page, total := Fuse(nil, nil, defaultStrategy(), 10, 1)
		if total != 0 || len(page) != 0 {
			t.Fatalf("expected empty result, got %d/%d", len(page), total)
		}
	})
}

func TestFuse_CustomStrategy(t *testing.T) {
	// A rank-free strategy that only counts source agreement.
	overlap := strategyFunc(func(lexical, vector float64) float64 {
		if lexical > 0 && vector > 0 {
			return 1
		}
		return 0
	})

	lexical := []hit.Hit{makeHit("a", 1, 1), makeHit("b", 1, 9)}
	vector := []hit.Hit{makeHit("a", 1, 0.5)}

	page, _ := Fuse(lexical, vector, overlap, 10, 1)

	if page[0].DocumentID() != "a" {
		t.Errorf("expected overlap doc first, got %s", page[0].DocumentID())
	}
	if page[0].CombinedScore() != 1 || page[1].CombinedScore() != 0 {
		t.Errorf("unexpected scores: %f, %f", page[0].CombinedScore(), page[1].CombinedScore())
	}
}

type strategyFunc func(lexical, vector float64) float64

func (f strategyFunc) Combine(lexical, vector float64) float64 { return f(lexical, vector) }
