// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/models"
	"github.com/danielhkuo/chainvote/state"
)

// errorNotice builds the transient notice shown for a failed action.
func errorNotice(err error) *models.Notice {
	return &models.Notice{
		Kind:    "error",
		Message: gateway.Reason(err),
		At:      time.Now(),
	}
}

// finishAction re-fetches the candidate list and installs the
// post-action snapshot, win or lose. Every mutation is followed by a
// wholesale refresh; nothing is patched optimistically, so a failed
// action simply lands back on the pre-action state plus a notice.
func finishAction(ctx context.Context, gw *gateway.Gateway, store *state.Store, actionErr error, mutate func(state.Snapshot) state.Snapshot) []models.Candidate {
	candidates, listErr := gw.ListCandidates(ctx)
	if listErr != nil {
		slog.Warn("post-action refresh failed", "error", listErr)
	}
	store.EndAction(func(snap state.Snapshot) state.Snapshot {
		if listErr == nil {
			snap.Candidates = candidates
		}
		if actionErr != nil {
			snap.Notice = errorNotice(actionErr)
		} else {
			snap.Notice = nil
			if mutate != nil {
				snap = mutate(snap)
			}
		}
		return snap
	})
	return candidates
}
