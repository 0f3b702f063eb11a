package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_Normalizes(t *testing.T) {
	u, err := parseBaseURL("live.volley.example")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}

	u, err = parseBaseURL("http://example.com:1234/base/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/base" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_EmptyErrors(t *testing.T) {
	if _, err := parseBaseURL("   "); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want error")
	}
}

func TestClient_FetchLive(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/live" {
			http.NotFound(w, r)
			return
		}
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"matches":[
			{"id":"m-1","homeTeam":"A","awayTeam":"B","status":"live",
			 "sets":[{"home":12,"away":10},{"home":null,"away":null}]},
			{"id":"m-2","homeTeam":"C","awayTeam":"D","status":"upcoming","sets":[]}
		]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	matches, err := c.FetchLive(ctx)
	if err != nil {
		t.Fatalf("FetchLive returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].ID != "m-1" || !matches[0].IsLive() {
		t.Fatalf("first match = %#v, want live m-1", matches[0])
	}
	if len(matches[0].Sets) != 2 {
		t.Fatalf("sets = %d, want 2", len(matches[0].Sets))
	}
	if matches[0].Sets[0].Home == nil || *matches[0].Sets[0].Home != 12 {
		t.Fatalf("set 1 home = %v, want 12", matches[0].Sets[0].Home)
	}
	if matches[0].Sets[1].Home != nil {
		t.Fatalf("null set point decoded as %v, want nil", *matches[0].Sets[1].Home)
	}
	if !strings.HasPrefix(gotUserAgent, "volley-score/") {
		t.Fatalf("User-Agent = %q, want volley-score prefix", gotUserAgent)
	}
}

func TestClient_FetchLiveDropsMalformedEntries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"matches":[
			{"id":"ok","homeTeam":"A","awayTeam":"B"},
			{"id":"bad","sets":"not-an-array"},
			{"id":"ok2","homeTeam":"C","awayTeam":"D"}
		]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	matches, err := c.FetchLive(context.Background())
	if err != nil {
		t.Fatalf("FetchLive returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want malformed entry dropped leaving 2", len(matches))
	}
	if matches[0].ID != "ok" || matches[1].ID != "ok2" {
		t.Fatalf("surviving matches = %v, %v", matches[0].ID, matches[1].ID)
	}
}

func TestClient_FetchLiveStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchLive(context.Background()); err == nil {
		t.Fatalf("FetchLive returned nil error, want status error")
	}
}

func TestClient_FetchLiveHonorsCancellation(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	if _, err := c.FetchLive(ctx); err == nil {
		t.Fatalf("FetchLive returned nil error, want cancellation")
	}
}
