package models

import "time"

// Session status constants
const (
	StatusDisconnected = "disconnected"
	StatusConnected    = "connected"
	StatusBusy         = "busy"
)

// Request types

type ConnectRequest struct {
	Passphrase string `json:"passphrase"`
}

type RegisterCandidateRequest struct {
	Name string `json:"name"`
}

type CastVoteRequest struct {
	Name string `json:"name"`
}

// Response types

type ConnectResponse struct {
	SessionID string `json:"session_id"`
	Account   string `json:"account"`
	IsOwner   bool   `json:"is_owner"`
}

type RegisterCandidateResponse struct {
	Candidate Candidate `json:"candidate"`
	Message   string    `json:"message"`
}

type CastVoteResponse struct {
	Candidate Candidate `json:"candidate"`
	Message   string    `json:"message"`
}

type TallyResponse struct {
	TotalVotes string     `json:"total_votes"`
	Rows       []TallyRow `json:"rows"`
	ComputedAt time.Time  `json:"computed_at"`
}

type TallyRow struct {
	Name    string `json:"name"`
	Votes   string `json:"votes"`
	Percent int    `json:"percent"`
}

type StateResponse struct {
	Status     string      `json:"status"`
	Account    string      `json:"account,omitempty"`
	SessionID  string      `json:"session_id,omitempty"`
	IsOwner    bool        `json:"is_owner"`
	Loading    bool        `json:"loading"`
	HasVoted   bool        `json:"has_voted"`
	Candidates []Candidate `json:"candidates"`
	Notice     *Notice     `json:"notice,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Domain types

// Candidate is the client-side cache of one on-chain candidate entry.
// The contract is the authoritative copy; the whole list is re-derived
// from it on every refresh.
type Candidate struct {
	Name  string `json:"name"`
	ID    string `json:"id"` // hex of the fixed-width on-chain identifier
	Votes uint64 `json:"votes"`
}

// Notice is a transient, dismissible message surfaced after a failed
// (or occasionally a successful) action.
type Notice struct {
	Kind    string    `json:"kind"` // "error" or "info"
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
