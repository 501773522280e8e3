package provider

import (
	"context"
	"fmt"
	"strings"

	"argo-assistant/internal/chat"
	"argo-assistant/pkg/websearch"
)

const searchName = "web_search"

// Search answers messages with web search results.
type Search struct {
	searcher websearch.Searcher
}

var _ chat.ResponseProvider = (*Search)(nil)

// NewSearch creates the web search provider. A nil searcher reports NOT_CONFIGURED on every call.
func NewSearch(searcher websearch.Searcher) *Search {
	return &Search{searcher: searcher}
}

// Respond searches the web for message and renders the hits as a numbered list.
func (p *Search) Respond(ctx context.Context, message string) (string, error) {
	if p.searcher == nil {
		return "", chat.NewNotConfiguredError(searchName)
	}

	query := searchQuery(message)
	results, err := p.searcher.Search(ctx, query)
	if err != nil {
		return "", chat.NewUpstreamError(searchName, err)
	}

	if len(results) == 0 {
		return fmt.Sprintf("I couldn't find any web results for %q.", query), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here is what I found for %q:", query)
	for i, r := range results {
		fmt.Fprintf(&sb, "\n%d. %s - %s", i+1, r.Title, r.URL)
		if desc := strings.TrimSpace(r.Description); desc != "" {
			fmt.Fprintf(&sb, "\n   %s", desc)
		}
	}
	return sb.String(), nil
}
