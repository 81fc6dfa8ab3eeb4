// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/handlers"
	"github.com/danielhkuo/chainvote/middleware"
	"github.com/danielhkuo/chainvote/state"
	"github.com/danielhkuo/chainvote/web"
)

func NewRouter(w handlers.Connector, gw *gateway.Gateway, store *state.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessions := &handlers.Sessions{}
	sessionHandler := handlers.NewSessionHandler(w, gw, store, sessions)
	candidateHandler := handlers.NewCandidateHandler(gw, store, sessions)
	voteHandler := handlers.NewVoteHandler(gw, store, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Wallet session
	mux.HandleFunc("POST /session", middleware.WithLogging(sessionHandler.Connect))
	mux.HandleFunc("DELETE /session", middleware.WithLogging(sessionHandler.Disconnect))

	// View state
	mux.HandleFunc("GET /state", middleware.WithLogging(sessionHandler.GetState))
	mux.HandleFunc("GET /state/stream", sessionHandler.StreamState) // long-lived; logged on its own
	mux.HandleFunc("POST /notice/dismiss", middleware.WithLogging(sessionHandler.DismissNotice))

	// Candidates
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Register))

	// Votes
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("GET /tally", middleware.WithLogging(voteHandler.Tally))

	// The single page itself
	mux.Handle("GET /", web.Handler())

	return mux
}
