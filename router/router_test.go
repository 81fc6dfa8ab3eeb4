package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/state"
	"github.com/danielhkuo/chainvote/testutil"
)

func newTestMux() *http.ServeMux {
	chain := testutil.NewFakeChain()
	gw := gateway.NewWithBackend(chain, chain, testutil.ContractAddr)
	conn := &testutil.FakeConnector{Account: testutil.OwnerAddress}
	return NewRouter(conn, gw, state.NewStore())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootServesPage(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "chainvote") {
		t.Error("Expected the embedded page body")
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux()

	// Wrong-method requests should 405, proving the route pattern is
	// registered. GET requests to API-only paths fall through to the
	// "GET /" page handler, which 404s anything but the root.
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"DELETE", "/state", http.StatusMethodNotAllowed},
		{"DELETE", "/candidates", http.StatusMethodNotAllowed},
		{"POST", "/tally", http.StatusMethodNotAllowed},
		{"GET", "/session", http.StatusNotFound},
		{"GET", "/votes", http.StatusNotFound},
		{"GET", "/no-such-page", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestVoteDispatch(t *testing.T) {
	mux := newTestMux()

	// Dispatch reaches the vote handler: no session yet means 401
	req := httptest.NewRequest("POST", "/votes", strings.NewReader(`{"name":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a session, got %d", w.Code)
	}
}
