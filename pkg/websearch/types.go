package websearch

import "time"

const (
	DefaultBaseURL     = "https://api.search.brave.com/res/v1"
	DefaultResultCount = 5
)

// Config configures a Client. Zero values fall back to defaults; a non-positive
// RequestsPerSecond disables throttling and a non-positive CacheSize disables caching.
type Config struct {
	APIKey            string
	BaseURL           string
	ResultCount       int
	RequestsPerSecond float64
	CacheSize         int
	CacheTTL          time.Duration
}

// Result is one web search hit.
type Result struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// searchResponse is the subset of the search API payload the client reads.
type searchResponse struct {
	Web struct {
		Results []Result `json:"results"`
	} `json:"web"`
}
