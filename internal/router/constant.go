package router

// Keyword sets. Matching is case-insensitive substring search.
var (
	WebSearchKeywords        = []string{"search", "find", "look up"}
	StructuredLookupKeywords = []string{"sheet", "database", "record"}
)

// FallbackCategory is returned when no rule matches.
const FallbackCategory = CategoryAICompletion
