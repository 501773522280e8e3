package provider

import (
	"strings"
	"unicode"

	"argo-assistant/internal/router"
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "about": {}, "any": {}, "at": {}, "be": {}, "by": {},
	"can": {}, "could": {}, "did": {}, "do": {}, "for": {}, "from": {}, "get": {}, "give": {},
	"have": {}, "how": {}, "i": {}, "in": {}, "is": {}, "it": {}, "me": {}, "my": {}, "of": {},
	"on": {}, "or": {}, "our": {}, "please": {}, "show": {}, "tell": {}, "that": {}, "the": {},
	"there": {}, "this": {}, "to": {}, "up": {}, "was": {}, "we": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "who": {}, "with": {}, "you": {}, "your": {},
	"records": {}, "sheets": {}, "databases": {},
}

// extractKeywords returns the distinct content words of message in order of appearance.
// Routing keywords and stop words are dropped.
func extractKeywords(message string) []string {
	routeWords := make(map[string]struct{})
	for _, kws := range [][]string{router.WebSearchKeywords, router.StructuredLookupKeywords} {
		for _, kw := range kws {
			for _, w := range strings.Fields(kw) {
				routeWords[w] = struct{}{}
			}
		}
	}

	fields := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	var out []string
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := stopWords[f]; ok {
			continue
		}
		if _, ok := routeWords[f]; ok {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// searchQuery strips a leading search command ("search for", "look up", ...) from message.
func searchQuery(message string) string {
	q := strings.TrimSpace(message)
	lower := strings.ToLower(q)
	for _, prefix := range []string{"search for ", "search ", "find me ", "find ", "look up ", "can you search for ", "can you find ", "can you look up "} {
		if strings.HasPrefix(lower, prefix) {
			q = strings.TrimSpace(q[len(prefix):])
			break
		}
	}
	if q == "" {
		return strings.TrimSpace(message)
	}
	return q
}
