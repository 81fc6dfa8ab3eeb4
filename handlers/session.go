// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/middleware"
	"github.com/danielhkuo/chainvote/models"
	"github.com/danielhkuo/chainvote/state"
	"github.com/danielhkuo/chainvote/wallet"
)

// Connector is the wallet surface handlers need. *wallet.Wallet
// satisfies it; tests substitute a fake.
type Connector interface {
	Connect(passphrase string) (*wallet.Session, error)
	Disconnect(s *wallet.Session)
}

// Sessions holds the one active wallet session. The page model is a
// single account at a time; connecting again replaces the session.
type Sessions struct {
	mu  sync.RWMutex
	cur *wallet.Session
}

func (s *Sessions) Get() *wallet.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Sessions) Set(sess *wallet.Session) {
	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
}

func (s *Sessions) Clear() *wallet.Session {
	s.mu.Lock()
	old := s.cur
	s.cur = nil
	s.mu.Unlock()
	return old
}

type SessionHandler struct {
	wallet   Connector
	gw       *gateway.Gateway
	store    *state.Store
	sessions *Sessions
}

func NewSessionHandler(w Connector, gw *gateway.Gateway, store *state.Store, sessions *Sessions) *SessionHandler {
	return &SessionHandler{wallet: w, gw: gw, store: store, sessions: sessions}
}

// Connect handles POST /session
func (h *SessionHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req models.ConnectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess, err := h.wallet.Connect(req.Passphrase)
	if err != nil {
		slog.Error("wallet connect failed", "error", err)
		h.store.Replace(func(s state.Snapshot) state.Snapshot {
			s.Notice = errorNotice(err)
			return s
		})
		middleware.GatewayErrorResponse(w, err)
		return
	}

	ctx := r.Context()
	account := sess.Account.Hex()

	isOwner, err := h.gw.IsOwner(ctx, account)
	if err != nil {
		slog.Error("owner check failed", "error", err, "account", account)
		h.wallet.Disconnect(sess)
		h.store.Replace(func(s state.Snapshot) state.Snapshot {
			s.Notice = errorNotice(err)
			return s
		})
		middleware.GatewayErrorResponse(w, err)
		return
	}

	// First refresh. A failure here still connects; the page just shows
	// the notice and an empty list until the next refresh succeeds.
	candidates, err := h.gw.ListCandidates(ctx)
	if err != nil {
		slog.Warn("initial candidate refresh failed", "error", err)
	}

	// Replace any previous session wholesale
	if old := h.sessions.Clear(); old != nil {
		h.wallet.Disconnect(old)
	}
	h.sessions.Set(sess)

	h.store.Replace(func(state.Snapshot) state.Snapshot {
		snap := state.Snapshot{
			Account:    account,
			SessionID:  sess.ID,
			IsOwner:    isOwner,
			Candidates: candidates,
		}
		if err != nil {
			snap.Notice = errorNotice(err)
		}
		return snap
	})

	slog.Info("wallet connected", "account", account, "is_owner", isOwner)

	middleware.JSONResponse(w, http.StatusCreated, models.ConnectResponse{
		SessionID: sess.ID,
		Account:   account,
		IsOwner:   isOwner,
	})
}

// Disconnect handles DELETE /session
func (h *SessionHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if old := h.sessions.Clear(); old != nil {
		h.wallet.Disconnect(old)
		slog.Info("wallet disconnected", "account", old.Account.Hex())
	}
	h.store.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// GetState handles GET /state
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, stateResponse(h.store.Current()))
}

// StreamState handles GET /state/stream as server-sent events fed by
// store subscriptions.
func (h *SessionHandler) StreamState(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch, cancel := h.store.Subscribe()
	defer cancel()

	// Current snapshot first, then updates as they land
	if err := writeEvent(w, h.store.Current()); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap := <-ch:
			if err := writeEvent(w, snap); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// DismissNotice handles POST /notice/dismiss
func (h *SessionHandler) DismissNotice(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Replace(func(s state.Snapshot) state.Snapshot {
		s.Notice = nil
		return s
	})
	middleware.JSONResponse(w, http.StatusOK, stateResponse(snap))
}

func writeEvent(w http.ResponseWriter, snap state.Snapshot) error {
	payload, err := json.Marshal(stateResponse(snap))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

func stateResponse(snap state.Snapshot) models.StateResponse {
	candidates := snap.Candidates
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	return models.StateResponse{
		Status:     snap.Status(),
		Account:    snap.Account,
		SessionID:  snap.SessionID,
		IsOwner:    snap.IsOwner,
		Loading:    snap.Loading,
		HasVoted:   snap.HasVoted,
		Candidates: candidates,
		Notice:     snap.Notice,
		UpdatedAt:  snap.UpdatedAt,
	}
}
