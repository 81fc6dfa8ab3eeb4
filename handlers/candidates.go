// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/middleware"
	"github.com/danielhkuo/chainvote/models"
	"github.com/danielhkuo/chainvote/state"
)

type CandidateHandler struct {
	gw       *gateway.Gateway
	store    *state.Store
	sessions *Sessions
}

func NewCandidateHandler(gw *gateway.Gateway, store *state.Store, sessions *Sessions) *CandidateHandler {
	return &CandidateHandler{gw: gw, store: store, sessions: sessions}
}

// List handles GET /candidates. Every read re-derives the list from
// the contract; the store only caches the result.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.gw.ListCandidates(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.GatewayErrorResponse(w, err)
		return
	}

	h.store.Replace(func(snap state.Snapshot) state.Snapshot {
		snap.Candidates = candidates
		return snap
	})

	if candidates == nil {
		candidates = []models.Candidate{}
	}
	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// Register handles POST /candidates
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get()
	if sess == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "connect a wallet first")
		return
	}

	var req models.RegisterCandidateRequest
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
	err := h.gw.RegisterCandidate(ctx, sess.Signer, req.Name)
	candidates := finishAction(ctx, h.gw, h.store, err, nil)

	if err != nil {
		if isBadName(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("candidate registration failed", "error", err, "name", req.Name)
		middleware.GatewayErrorResponse(w, err)
		return
	}

	name := strings.ToLower(req.Name)
	slog.Info("candidate registered", "name", name, "account", sess.Account.Hex())

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterCandidateResponse{
		Candidate: findCandidate(candidates, name),
		Message:   "Candidate registered",
	})
}

// isBadName reports whether the failure happened before any
// transaction was built (encoding rejected the name).
func isBadName(err error) bool {
	return errors.Is(err, gateway.ErrEmptyName) ||
		errors.Is(err, gateway.ErrNameTooLong) ||
		errors.Is(err, gateway.ErrInvalidName)
}

func findCandidate(candidates []models.Candidate, name string) models.Candidate {
	for _, c := range candidates {
		if c.Name == name {
			return c
		}
	}
	return models.Candidate{Name: name}
}
