// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gateway wraps the fixed on-chain voting contract.

The contract enforces the real rules (one vote per address, owner-gated
registration, unique candidates); the gateway only builds transactions,
polls view functions, and decodes results. It holds no state of its own.

# Operations

Writes submit a transaction and block until it is mined:

	err := gw.RegisterCandidate(ctx, session.Signer, "alice")
	err := gw.Vote(ctx, session.Signer, "alice")

Reads are free view calls:

	candidates, err := gw.ListCandidates(ctx)
	count, err := gw.VoteCountOf(ctx, "alice")
	ok, err := gw.IsOwner(ctx, account)

ListCandidates performs one round trip per candidate for the counts;
the contract offers no batch read.

# Candidate Identifiers

On-chain keys are 32-byte zero-padded UTF-8 encodings of the lowercase
display name:

	id, err := gateway.EncodeName("Alice") // "alice" padded to 32 bytes
	name := gateway.DecodeName(id)         // "alice"

Names longer than 31 UTF-8 bytes are rejected, never truncated.

# Error Taxonomy

Every failure wraps one of three sentinels:

  - ErrUserRejected: signer declined to sign
  - ErrContractReverted: an on-chain require tripped
  - ErrNetwork: the RPC provider failed

Classify folds raw provider errors into the taxonomy; Reason extracts
the revert reason for display.

# Test Backends

The gateway talks to the chain through the BoundContract and
bind.DeployBackend interfaces, so tests can substitute an in-memory
contract (see testutil.NewFakeChain).
*/
package gateway
