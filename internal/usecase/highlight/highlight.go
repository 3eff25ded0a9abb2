// Package highlight extracts matched terms from emphasis-marked snippets
// returned by the retrieval backends.
package highlight

import (
	"regexp"
	"strings"
)

// emphasisRe captures the content of <em>…</em> spans. Non-greedy so
// multiple spans in one snippet are captured separately.
var emphasisRe = regexp.MustCompile(`(?is)<em>(.*?)</em>`)

// Terms parses the emphasis-marked spans out of snippets into the list
// of matched terms for display.
//
// In exact-phrase mode each span is kept whole after trimming; otherwise
// spans are split on whitespace and every token is added individually.
// The output is deduplicated preserving first-seen order, so identical
// input always yields identical output. Snippets without spans
// contribute nothing.
func Terms(snippets []string, exactPhrase bool) []string {
	var terms []string
	seen := make(map[string]struct{})

	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	for _, snippet := range snippets {
		for _, m := range emphasisRe.FindAllStringSubmatch(snippet, -1) {
			span := m[1]
			if exactPhrase {
				add(span)
				continue
			}
			for _, token := range strings.Fields(span) {
				add(token)
			}
		}
	}

	return terms
}
