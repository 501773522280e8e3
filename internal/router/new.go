package router

// Router classifies a message into a provider category.
type Router interface {
	Classify(message string) Category
}

// KeywordRouter classifies messages with fixed keyword rules.
// It holds no mutable state and is safe for concurrent use.
type KeywordRouter struct {
	rules []rule
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. Rules are evaluated in order: web search before structured lookup.
func New() *KeywordRouter {
	return &KeywordRouter{
		rules: []rule{
			{category: CategoryWebSearch, keywords: WebSearchKeywords},
			{category: CategoryStructuredLookup, keywords: StructuredLookupKeywords},
		},
	}
}
