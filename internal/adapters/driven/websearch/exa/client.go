// Package exa provides a web search gateway adapter using the Exa API.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lookfar-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchGateway = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.exa.ai"
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is the proactive throttle rate.
	DefaultRequestsPerSecond = 2.0

	// Result counts per mode.
	searchNumResults   = 10
	researchNumResults = 20
)

// Config holds configuration for the Exa search client.
type Config struct {
	// APIKey is the Exa API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.exa.ai).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond throttles outbound requests (default: 2).
	RequestsPerSecond float64
}

// Client provides web search using the Exa API.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter

	mu     sync.RWMutex
	apiKey string
}

// searchRequest is the Exa /search request format.
type searchRequest struct {
	Query      string          `json:"query"`
	Type       string          `json:"type"`
	NumResults int             `json:"numResults"`
	Contents   contentsRequest `json:"contents"`
}

// contentsRequest controls which content fields the API returns.
type contentsRequest struct {
	Text       bool `json:"text"`
	Highlights bool `json:"highlights,omitempty"`
	Summary    bool `json:"summary,omitempty"`
}

// NewClient creates a new Exa search client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("exa: %w", domain.ErrMissingAPIKey)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

// requestForMode maps a search mode to the Exa request shape.
// Quick searches keep the payload light; research requests ask the API
// for highlights and summaries on more results.
func requestForMode(query string, mode domain.SearchMode) searchRequest {
	switch mode {
	case domain.ModeResearch:
		return searchRequest{
			Query:      query,
			Type:       "deep",
			NumResults: researchNumResults,
			Contents: contentsRequest{
				Text:       true,
				Highlights: true,
				Summary:    true,
			},
		}
	default:
		return searchRequest{
			Query:      query,
			Type:       "auto",
			NumResults: searchNumResults,
			Contents: contentsRequest{
				Text: true,
			},
		}
	}
}

// Search performs a web search for the given query and mode.
func (c *Client) Search(ctx context.Context, query string, mode domain.SearchMode) (*domain.SearchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("exa: wait for rate limit: %w", err)
	}

	reqBody := requestForMode(query, mode)

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/search",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.currentAPIKey())

	logger.Debug("exa: POST /search type=%s numResults=%d", reqBody.Type, reqBody.NumResults)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("exa: %w (status %d): %s", domain.ErrRateLimited, resp.StatusCode, string(body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exa search (status %d): %s", resp.StatusCode, string(body))
	}

	var searchResp domain.SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &searchResp, nil
}

// currentAPIKey returns the key under the read lock.
func (c *Client) currentAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// SetAPIKey replaces the API key. Used when configuration is reloaded
// at runtime; subsequent requests pick up the new key.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// Close releases resources.
func (c *Client) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
