package websearch

import "context"

// Searcher runs a web search.
// Implementations are safe for concurrent use.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
