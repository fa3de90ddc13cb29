//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// SentEmail is what the fake provider received for one accepted send.
type SentEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// FakeEmailAPI stands in for the transactional email provider.
// Individual recipients can be configured to fail with a fixed status.
type FakeEmailAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	sent     []SentEmail
	attempts map[string]int
	failures map[string]int
}

func NewFakeEmailAPI(t *testing.T) *FakeEmailAPI {
	t.Helper()

	f := &FakeEmailAPI{
		attempts: make(map[string]int),
		failures: make(map[string]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeEmailAPI) URL() string {
	return f.server.URL
}

func (f *FakeEmailAPI) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/email" {
		http.NotFound(w, r)
		return
	}

	var msg SentEmail
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts[msg.To]++
	if status, ok := f.failures[msg.To]; ok {
		http.Error(w, `{"ErrorCode":1,"Message":"fake failure"}`, status)
		return
	}
	f.sent = append(f.sent, msg)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ErrorCode":0,"Message":"OK"}`))
}

// FailFor makes every send to recipient answer with status.
func (f *FakeEmailAPI) FailFor(recipient string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[recipient] = status
}

func (f *FakeEmailAPI) Sent() []SentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentEmail, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *FakeEmailAPI) Attempts(recipient string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[recipient]
}

func (f *FakeEmailAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.attempts = make(map[string]int)
	f.failures = make(map[string]int)
}
