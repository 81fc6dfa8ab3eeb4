// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// The gateway error taxonomy. Every failure leaving this package wraps
// exactly one of these sentinels, so handlers can map them to HTTP
// statuses with errors.Is.
var (
	// ErrUserRejected: the signer declined to sign the transaction.
	ErrUserRejected = errors.New("transaction rejected by signer")

	// ErrContractReverted: an on-chain precondition failed (duplicate
	// candidate, caller not owner, already voted, unknown candidate).
	ErrContractReverted = errors.New("contract reverted")

	// ErrNetwork: the RPC provider failed or was unreachable.
	ErrNetwork = errors.New("network error")
)

// Classify folds a raw provider, signer, or receipt failure into the
// taxonomy. Already-classified errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUserRejected) || errors.Is(err, ErrContractReverted) || errors.Is(err, ErrNetwork) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "execution reverted"),
		strings.Contains(msg, "always failing transaction"),
		strings.Contains(msg, "revert"):
		return fmt.Errorf("%w: %v", ErrContractReverted, err)
	case strings.Contains(msg, "user denied"),
		strings.Contains(msg, "user rejected"),
		strings.Contains(msg, "could not decrypt"):
		return fmt.Errorf("%w: %v", ErrUserRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}

// Reason extracts the best available human-readable reason for display
// in a notice: the revert reason if the node reported one, otherwise
// the error text itself.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.Index(msg, "execution reverted"); i >= 0 {
		return msg[i:]
	}
	return msg
}
