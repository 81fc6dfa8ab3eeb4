// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the chainvote API.

# Handler Types

Each handler is a struct with gateway, store, and session dependencies:

  - SessionHandler: Wallet connect/disconnect, state snapshots, SSE stream
  - CandidateHandler: Candidate listing and owner registration
  - VoteHandler: Vote casting and tally projection

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(w, gw, store, sessions)

# Session Flow

One wallet session at a time, mirroring a single-page dApp:

	POST   /session → Connect (unlock keystore, ownership check, first refresh)
	DELETE /session → Disconnect (purely local reset)

# Action Flow

Every state-changing action follows the same shape: check session,
take the global loading flag (409 if another action is in flight),
submit the transaction, wait for it to be mined, then re-fetch the
whole candidate list — win or lose. There is no optimistic patching,
so a failed action lands back on the pre-action state plus a notice.

	POST /candidates → Register (owner only; non-owners revert on-chain)
	POST /votes      → Cast (one vote per address, enforced on-chain)

# Reads

	GET /state        → current snapshot projection
	GET /state/stream → server-sent events per store update
	GET /candidates   → refresh + list
	GET /tally        → humanized totals with percents

# Notices

Failures surface as a dismissible notice carrying the revert reason:

	POST /notice/dismiss
*/
package handlers
