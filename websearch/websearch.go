// Package websearch queries the Tavily search API for travel content,
// restricted to a small allow-list of trusted travel domains.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"dreamtrip/models"

	"github.com/patrickmn/go-cache"
)

const (
	baseURL    = "https://api.tavily.com/search"
	maxResults = 5
)

// Only established travel sources make it into the assistant's context.
var includeDomains = []string{
	"tripadvisor.com",
	"lonelyplanet.com",
	"booking.com",
	"airbnb.com",
	"mauritius.travel",
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

func NewClient() *Client {
	return &Client{
		apiKey:     os.Getenv("TAVILY_API_KEY"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache.New(15*time.Minute, 30*time.Minute),
	}
}

// NewClientWithURL points the client at a custom endpoint, for tests.
func NewClientWithURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache.New(15*time.Minute, 30*time.Minute),
	}
}

type searchRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeDomains []string `json:"include_domains"`
	MaxResults     int      `json:"max_results"`
}

type searchResponse struct {
	Results []models.SearchResult `json:"results"`
}

// Search runs a travel-scoped query for the user's message. The message is
// expanded into a Mauritius travel query before it hits the API.
func (c *Client) Search(ctx context.Context, message string) ([]models.SearchResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("websearch: missing TAVILY_API_KEY")
	}

	query := fmt.Sprintf("%s Mauritius travel guide recommendations", message)
	if cached, ok := c.cache.Get(query); ok {
		return cached.([]models.SearchResult), nil
	}

	payload, err := json.Marshal(searchRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "basic",
		IncludeDomains: includeDomains,
		MaxResults:     maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("websearch: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("websearch: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("websearch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("websearch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("websearch: read body: %w", err)
	}

	var raw searchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("websearch: decode json: %w", err)
	}

	results := raw.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	c.cache.Set(query, results, cache.DefaultExpiration)
	return results, nil
}
