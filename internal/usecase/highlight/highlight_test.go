package highlight

import (
	"reflect"
	"testing"
)

func TestTerms_ExactPhraseKeepsSpansWhole(t *testing.T) {
	got := Terms([]string{"the <em>big tree</em> stood"}, true)
	want := []string{"big tree"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTerms_WordModeSplitsSpans(t *testing.T) {
	got := Terms([]string{"the <em>big tree</em> stood"}, false)
	want := []string{"big", "tree"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTerms_MultipleSpansPerSnippet(t *testing.T) {
	snippets := []string{"<em>one</em> and <em>two</em>, then <em>three four</em>"}

	got := Terms(snippets, false)
	want := []string{"one", "two", "three", "four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTerms_DedupPreservesFirstSeenOrder(t *testing.T) {
	snippets := []string{
		"<em>tree</em> near a <em>river</em>",
		"another <em>river</em> and <em>tree</em> and <em>stone</em>",
	}

	got := Terms(snippets, false)
	want := []string{"tree", "river", "stone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTerms_CaseInsensitiveMarkers(t *testing.T) {
	got := Terms([]string{"a <EM>match</EM> here"}, false)
	want := []string{"match"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTerms_TrimsWhitespace(t *testing.T) {
	got := Terms([]string{"<em>  padded phrase  </em>"}, true)
	want := []string{"padded phrase"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTerms_NoMarkersContributeNothing(t *testing.T) {
	got := Terms([]string{"plain text", "more plain text"}, false)
	if len(got) != 0 {
		t.Errorf("expected no terms, got %v", got)
	}
}

func TestTerms_EmptyInput(t *testing.T) {
	if got := Terms(nil, false); len(got) != 0 {
		t.Errorf("nil input: expected no terms, got %v", got)
	}
	if got := Terms([]string{}, true); len(got) != 0 {
		t.Errorf("empty input: expected no terms, got %v", got)
	}
	if got := Terms([]string{"<em></em>", "<em>   </em>"}, false); len(got) != 0 {
		t.Errorf("empty spans: expected no terms, got %v", got)
	}
}
