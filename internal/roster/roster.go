// Package roster provides the HTTP client for the federation team directory.
//
// The directory is a slow-moving side input: it maps the live feed's foreign
// team ids to federation records and is refreshed on its own timer,
// independent of the live poll. Consumers must tolerate an empty or stale
// roster at any time.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Team is one directory record. ForeignID matches the team ids used by the
// live feed; ID is the federation's own identifier.
type Team struct {
	ID        int64  `json:"id"`
	ForeignID int64  `json:"foreignId"`
	Name      string `json:"name"`
	Country   string `json:"country"`
}

// ByForeignID indexes teams by the live feed's id space. Records without a
// foreign id are unreachable from the feed and are skipped.
func ByForeignID(teams []Team) map[int64]Team {
	index := make(map[int64]Team, len(teams))
	for _, t := range teams {
		if t.ForeignID == 0 {
			continue
		}
		index[t.ForeignID] = t
	}
	return index
}

// Fetcher defines the interface for reading the team directory.
type Fetcher interface {
	FetchTeams(ctx context.Context) ([]Team, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the team directory HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "volley-score/2.0"
	requestTimeout   = 15 * time.Second
)

// NewClient builds a Client for the given directory base URL.
func NewClient(baseURL string) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("roster url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse roster url %q: %w", baseURL, err)
	}
	base.RawQuery = ""
	base.Fragment = ""
	base.Path = strings.TrimSuffix(base.Path, "/")
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// teamsResponse mirrors the directory envelope.
type teamsResponse struct {
	Teams []Team `json:"teams"`
}

// FetchTeams retrieves the full team directory.
func (c *Client) FetchTeams(ctx context.Context) ([]Team, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + "/api/teams"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("roster returned status %d", resp.StatusCode)
	}
	var payload teamsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Teams, nil
}
