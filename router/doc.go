// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the chainvote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(w, gw, store)

# Endpoints

Health:

	GET /health

Wallet session:

	POST   /session - Connect the wallet
	DELETE /session - Disconnect (local reset)

View state:

	GET  /state          - Current snapshot
	GET  /state/stream   - Server-sent events per update
	POST /notice/dismiss - Clear the transient notice

Candidates:

	GET  /candidates - Refresh and list
	POST /candidates - Register (contract owner only)

Votes:

	POST /votes - Cast a vote
	GET  /tally - Humanized totals

Page:

	GET / - The embedded single page

# Handler Initialization

The router creates handler instances with dependency injection:

	sessions := &handlers.Sessions{}
	sessionHandler := handlers.NewSessionHandler(w, gw, store, sessions)
	candidateHandler := handlers.NewCandidateHandler(gw, store, sessions)
	voteHandler := handlers.NewVoteHandler(gw, store, sessions)

All handlers share the gateway, the snapshot store, and the session
holder.
*/
package router
