// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
chainvote API.

# Domain Types

  - Candidate: one on-chain candidate entry (name, identifier, vote count).
    The client only caches these; the contract owns the truth.
  - Notice: a transient, dismissible message shown after an action.

# Request/Response Types

Each API operation has a matching request/response pair:

  - ConnectRequest / ConnectResponse
  - RegisterCandidateRequest / RegisterCandidateResponse
  - CastVoteRequest / CastVoteResponse
  - TallyResponse

# Error Responses

All errors use a consistent format:

	{
	  "error": "Conflict",
	  "message": "execution reverted: already voted"
	}
*/
package models
