// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package state holds the client's in-memory view state.

There is no persistence: the candidate list is a cache re-derived from
the contract on every refresh, and everything resets on restart.

# Snapshots

State is an immutable Snapshot value replaced wholesale on every
change, never patched in place:

	snap := store.Current()
	store.Replace(func(s state.Snapshot) state.Snapshot {
		s.Candidates = fresh
		return s
	})

Snapshot.Status derives the lifecycle phase:

	disconnected → connected → busy → connected

# The Loading Flag

One global flag gates all actions:

	if !store.TryBeginAction() {
		// reject with 409
	}
	defer store.EndAction(nil)

It is advisory in the protocol sense: it serializes actions arriving
through this store but cannot cancel a transaction already handed to
the network.

# Subscriptions

Views observe state through a subscription rather than ambient
variables:

	ch, cancel := store.Subscribe()
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-ch:
			...
		}
	}

Sends to subscribers never block: a subscriber that stops reading
misses snapshots and catches up on the next publish it has room for.
The channel is never closed; a subscriber leaves by canceling and
walking away.
*/
package state
