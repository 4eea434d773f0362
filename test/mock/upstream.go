package mock

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

// Upstream is an httptest stand-in for the AviationStack /flights endpoint.
// It replies with a fixed status and body and records every query it receives.
type Upstream struct {
	Server *httptest.Server

	mu      sync.Mutex
	status  int
	body    []byte
	delay   time.Duration
	queries []url.Values
}

// NewUpstream starts a stub that answers 200 with body.
// Call Close when done.
func NewUpstream(body []byte) *Upstream {
	u := &Upstream{status: http.StatusOK, body: body}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	return u
}

// WithStatus sets the HTTP status of every reply.
func (u *Upstream) WithStatus(status int) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status = status
	return u
}

// WithBody replaces the reply body.
func (u *Upstream) WithBody(body []byte) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.body = body
	return u
}

// WithDelay delays every reply.
func (u *Upstream) WithDelay(d time.Duration) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = d
	return u
}

// URL returns the base URL to configure the client with.
func (u *Upstream) URL() string {
	return u.Server.URL
}

// Close shuts the stub down.
func (u *Upstream) Close() {
	u.Server.Close()
}

// Requests returns the number of requests received.
func (u *Upstream) Requests() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.queries)
}

// LastQuery returns the query of the most recent request, or nil.
func (u *Upstream) LastQuery() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.queries) == 0 {
		return nil
	}
	return u.queries[len(u.queries)-1]
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.queries = append(u.queries, r.URL.Query())
	status, body, delay := u.status, u.body, u.delay
	u.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
