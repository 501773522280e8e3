package router

// Category is the provider category a message is routed to.
type Category string

const (
	CategoryAICompletion     Category = "AI_COMPLETION"
	CategoryStructuredLookup Category = "STRUCTURED_LOOKUP"
	CategoryWebSearch        Category = "WEB_SEARCH"
)

func (c Category) String() string {
	return string(c)
}

// rule maps a keyword set to the category it selects.
type rule struct {
	category Category
	keywords []string
}
