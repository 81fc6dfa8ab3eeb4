package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/models"
	"github.com/danielhkuo/chainvote/state"
	"github.com/danielhkuo/chainvote/testutil"
	"github.com/danielhkuo/chainvote/wallet"
)

type testEnv struct {
	chain    *testutil.FakeChain
	gw       *gateway.Gateway
	store    *state.Store
	sessions *Sessions
	conn     *testutil.FakeConnector
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	chain := testutil.NewFakeChain()
	return &testEnv{
		chain:    chain,
		gw:       gateway.NewWithBackend(chain, chain, testutil.ContractAddr),
		store:    state.NewStore(),
		sessions: &Sessions{},
		conn:     &testutil.FakeConnector{Account: testutil.OwnerAddress},
	}
}

func (e *testEnv) sessionHandler() *SessionHandler {
	return NewSessionHandler(e.conn, e.gw, e.store, e.sessions)
}

// connect wires a live session directly, for tests that exercise the
// action handlers rather than the connect flow.
func (e *testEnv) connect(t *testing.T, account string) {
	t.Helper()
	sess, err := e.conn.Connect("")
	if err != nil {
		t.Fatalf("fake connect failed: %v", err)
	}
	e.sessions.Set(sess)
	e.store.Replace(func(s state.Snapshot) state.Snapshot {
		s.Account = account
		s.SessionID = sess.ID
		return s
	})
}

func TestConnect(t *testing.T) {
	env := newTestEnv(t)
	handler := env.sessionHandler()

	req := testutil.MakeRequest("POST", "/session", models.ConnectRequest{Passphrase: "pw"}, nil)
	w := httptest.NewRecorder()
	handler.Connect(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.ConnectResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Account != testutil.OwnerAddress.Hex() {
		t.Errorf("expected account %s, got %s", testutil.OwnerAddress.Hex(), resp.Account)
	}
	if !resp.IsOwner {
		t.Error("owner account should be flagged as owner")
	}
	if resp.SessionID == "" {
		t.Error("expected a session id")
	}

	snap := env.store.Current()
	if snap.Status() != models.StatusConnected {
		t.Errorf("expected connected state, got %q", snap.Status())
	}
	if env.sessions.Get() == nil {
		t.Error("session should be held after connect")
	}
}

func TestConnectNonOwner(t *testing.T) {
	env := newTestEnv(t)
	env.conn.Account = testutil.VoterAddress
	handler := env.sessionHandler()

	req := testutil.MakeRequest("POST", "/session", models.ConnectRequest{}, nil)
	w := httptest.NewRecorder()
	handler.Connect(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.ConnectResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.IsOwner {
		t.Error("non-owner account must not be flagged as owner")
	}
}

func TestConnectWalletUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.conn.Err = wallet.ErrWalletUnavailable
	handler := env.sessionHandler()

	req := testutil.MakeRequest("POST", "/session", models.ConnectRequest{}, nil)
	w := httptest.NewRecorder()
	handler.Connect(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

	// Surfaced as a notice, and the view stays disconnected
	snap := env.store.Current()
	if snap.Notice == nil {
		t.Fatal("expected a notice after a failed connect")
	}
	if snap.Status() != models.StatusDisconnected {
		t.Errorf("expected disconnected, got %q", snap.Status())
	}
}

func TestConnectOwnerCheckFailed(t *testing.T) {
	env := newTestEnv(t)
	env.chain.FailCalls(errors.New("connection refused"))
	handler := env.sessionHandler()

	req := testutil.MakeRequest("POST", "/session", models.ConnectRequest{Passphrase: "pw"}, nil)
	w := httptest.NewRecorder()
	handler.Connect(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)

	// Wallet released, failure surfaced as a notice, view disconnected
	if env.conn.Connected() {
		t.Error("wallet session should be released after a failed owner check")
	}
	snap := env.store.Current()
	if snap.Notice == nil {
		t.Fatal("expected a notice after a failed owner check")
	}
	if snap.Status() != models.StatusDisconnected {
		t.Errorf("expected disconnected, got %q", snap.Status())
	}
}

func TestConnectDeclined(t *testing.T) {
	env := newTestEnv(t)
	env.conn.Err = gateway.ErrUserRejected
	handler := env.sessionHandler()

	req := testutil.MakeRequest("POST", "/session", models.ConnectRequest{Passphrase: "wrong"}, nil)
	w := httptest.NewRecorder()
	handler.Connect(w, req)

	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestDisconnect(t *testing.T) {
	env := newTestEnv(t)
	handler := env.sessionHandler()
	env.connect(t, testutil.OwnerAddress.Hex())

	req := testutil.MakeRequest("DELETE", "/session", nil, nil)
	w := httptest.NewRecorder()
	handler.Disconnect(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	if env.sessions.Get() != nil {
		t.Error("session should be cleared")
	}
	if env.conn.Connected() {
		t.Error("wallet session should be released")
	}
	snap := env.store.Current()
	if snap.Status() != models.StatusDisconnected || snap.Account != "" {
		t.Errorf("expected clean disconnected state, got %+v", snap)
	}
}

func TestGetState(t *testing.T) {
	env := newTestEnv(t)
	handler := env.sessionHandler()

	req := testutil.MakeRequest("GET", "/state", nil, nil)
	w := httptest.NewRecorder()
	handler.GetState(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.StateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != models.StatusDisconnected {
		t.Errorf("fresh store should be disconnected, got %q", resp.Status)
	}
	if resp.Candidates == nil {
		t.Error("candidates should serialize as an empty list, not null")
	}
}

func TestDismissNotice(t *testing.T) {
	env := newTestEnv(t)
	handler := env.sessionHandler()

	env.store.Replace(func(s state.Snapshot) state.Snapshot {
		s.Notice = &models.Notice{Kind: "error", Message: "boom", At: time.Now()}
		return s
	})

	req := testutil.MakeRequest("POST", "/notice/dismiss", nil, nil)
	w := httptest.NewRecorder()
	handler.DismissNotice(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if env.store.Current().Notice != nil {
		t.Error("notice should be cleared")
	}
}

func TestStreamState(t *testing.T) {
	env := newTestEnv(t)
	handler := env.sessionHandler()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/state/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.StreamState(w, req)
		close(done)
	}()

	// Let the handler subscribe and write the initial snapshot, then
	// publish an update and shut the stream down.
	time.Sleep(50 * time.Millisecond)
	env.store.Replace(func(s state.Snapshot) state.Snapshot {
		s.Account = testutil.OwnerAddress.Hex()
		return s
	})
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not stop on context cancellation")
	}

	body := w.Body.String()
	if strings.Count(body, "data: ") < 2 {
		t.Errorf("expected at least initial snapshot plus one update, got:\n%s", body)
	}
	if !strings.Contains(body, testutil.OwnerAddress.Hex()) {
		t.Error("published update never reached the stream")
	}
	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("expected SSE content type, got %q", got)
	}
}
