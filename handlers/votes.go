// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/middleware"
	"github.com/danielhkuo/chainvote/models"
	"github.com/danielhkuo/chainvote/state"
)

type VoteHandler struct {
	gw       *gateway.Gateway
	store    *state.Store
	sessions *Sessions
}

func NewVoteHandler(gw *gateway.Gateway, store *state.Store, sessions *Sessions) *VoteHandler {
	return &VoteHandler{gw: gw, store: store, sessions: sessions}
}

// Cast handles POST /votes
//
// The HasVoted flag set on success is session-scoped only: a voter who
// voted in a previous session discovers the duplicate through the
// reverted transaction, not through this flag.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get()
	if sess == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "connect a wallet first")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	if !h.store.TryBeginAction() {
		middleware.ErrorResponse(w, http.StatusConflict, "another action is in flight")
		return
	}

	ctx := r.Context()
	err := h.gw.Vote(ctx, sess.Signer, req.Name)
	candidates := finishAction(ctx, h.gw, h.store, err, func(snap state.Snapshot) state.Snapshot {
		snap.HasVoted = true
		return snap
	})

	if err != nil {
		if isBadName(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("vote failed", "error", err, "name", req.Name, "account", sess.Account.Hex())
		middleware.GatewayErrorResponse(w, err)
		return
	}

	name := strings.ToLower(req.Name)
	slog.Info("vote cast", "name", name, "account", sess.Account.Hex())

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Candidate: findCandidate(candidates, name),
		Message:   "Vote confirmed",
	})
}

// Tally handles GET /tally: a read-only projection of the current
// counts, formatted for display.
func (h *VoteHandler) Tally(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.gw.ListCandidates(r.Context())
	if err != nil {
		slog.Error("failed to read tally", "error", err)
		middleware.GatewayErrorResponse(w, err)
		return
	}

	h.store.Replace(func(snap state.Snapshot) state.Snapshot {
		snap.Candidates = candidates
		return snap
	})

	middleware.JSONResponse(w, http.StatusOK, buildTally(candidates))
}
