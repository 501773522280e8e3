package router

import "strings"

// Classify returns the category of the first rule with a keyword contained in message.
// Every string, including "", maps to some category.
func (r *KeywordRouter) Classify(message string) Category {
	normalized := strings.ToLower(message)

	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(normalized, kw) {
				return rl.category
			}
		}
	}

	return FallbackCategory
}
