package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher defines the interface for reading the live feed.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchLive(ctx context.Context) ([]Match, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the live-score HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "volley-score/2.0"
	requestTimeout   = 8 * time.Second
)

// NewClient builds a Client for the given feed base URL.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// liveResponse mirrors the live-feed envelope. Entries stay raw so one
// malformed match cannot take down the whole poll.
type liveResponse struct {
	Matches []json.RawMessage `json:"matches"`
}

// FetchLive retrieves the current batch of match snapshots. Malformed
// individual entries are dropped; the rest of the batch still comes back.
func (c *Client) FetchLive(ctx context.Context) ([]Match, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload liveResponse
	if err := c.do(ctx, "/api/live", &payload); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(payload.Matches))
	for i, raw := range payload.Matches {
		var m Match
		if err := json.Unmarshal(raw, &m); err != nil {
			log.Printf("feed: dropping malformed match %d: %v", i, err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("feed %s returned status %d", path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}
