package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ErrEmptyQuery is returned when Search is called with a blank query.
var ErrEmptyQuery = errors.New("websearch: query is empty")

// Client calls a Brave-compatible web search API.
// Upstream calls are throttled and successful results are cached per query.
type Client struct {
	apiKey     string
	baseURL    string
	count      int
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, []Result]
}

// New creates a new search client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("websearch: API key is required")
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		count:      cfg.ResultCount,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.count <= 0 {
		c.count = DefaultResultCount
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	if cfg.CacheSize > 0 {
		c.cache = expirable.NewLRU[string, []Result](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return c, nil
}

// WithHTTPClient overrides the HTTP client used for upstream calls.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Search returns up to the configured number of results for query.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	key := strings.ToLower(query)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("websearch: throttled: %w", err)
	}

	results, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Add(key, results)
	}
	return results, nil
}

func (c *Client) fetch(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(c.count))
	endpoint := fmt.Sprintf("%s/web/search?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search API returned status: %d, body: %s", resp.StatusCode, string(raw))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := parsed.Web.Results
	if len(results) > c.count {
		results = results[:c.count]
	}
	return results, nil
}
