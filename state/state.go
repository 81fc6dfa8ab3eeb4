// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"sync"
	"time"

	"github.com/danielhkuo/chainvote/models"
)

// Snapshot is one immutable view of the client's state. Stores hand out
// copies; mutating a returned snapshot never affects the store.
type Snapshot struct {
	Account    string
	SessionID  string
	IsOwner    bool
	Candidates []models.Candidate
	Loading    bool
	HasVoted   bool // session-scoped only; on-chain vote history is not consulted
	Notice     *models.Notice
	UpdatedAt  time.Time
}

// Status derives the lifecycle phase from the snapshot fields:
// disconnected → connected → busy.
func (s Snapshot) Status() string {
	switch {
	case s.Loading:
		return models.StatusBusy
	case s.Account != "":
		return models.StatusConnected
	default:
		return models.StatusDisconnected
	}
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.Candidates != nil {
		out.Candidates = make([]models.Candidate, len(s.Candidates))
		copy(out.Candidates, s.Candidates)
	}
	if s.Notice != nil {
		n := *s.Notice
		out.Notice = &n
	}
	return out
}

// Store holds the current snapshot and replaces it atomically. There is
// no partial update: every change goes through Replace, which installs
// a whole new snapshot, so the last completed refresh always wins.
type Store struct {
	mu     sync.RWMutex
	cur    Snapshot
	subs   map[uint64]chan Snapshot
	nextID uint64
}

func NewStore() *Store {
	return &Store{
		cur:  Snapshot{UpdatedAt: time.Now()},
		subs: make(map[uint64]chan Snapshot),
	}
}

// Current returns a copy of the current snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.clone()
}

// Replace installs the snapshot produced by mutate and fans it out to
// subscribers. mutate receives a copy of the current snapshot.
func (s *Store) Replace(mutate func(Snapshot) Snapshot) Snapshot {
	s.mu.Lock()
	next := mutate(s.cur.clone())
	next.UpdatedAt = time.Now()
	s.cur = next
	published := next.clone()
	subs := make([]chan Snapshot, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- published:
		default: // slow subscriber; it will catch the next snapshot
		}
	}
	return published
}

// Reset clears everything back to the disconnected state.
func (s *Store) Reset() Snapshot {
	return s.Replace(func(Snapshot) Snapshot {
		return Snapshot{}
	})
}

// TryBeginAction sets the global loading flag, failing if another
// action is already in flight. This is the only concurrency guard;
// there is no queue and no cancellation of a submitted transaction.
func (s *Store) TryBeginAction() bool {
	ok := false
	s.Replace(func(snap Snapshot) Snapshot {
		if !snap.Loading {
			snap.Loading = true
			ok = true
		}
		return snap
	})
	return ok
}

// EndAction clears the loading flag and applies any final mutation,
// win or lose.
func (s *Store) EndAction(mutate func(Snapshot) Snapshot) Snapshot {
	return s.Replace(func(snap Snapshot) Snapshot {
		if mutate != nil {
			snap = mutate(snap)
		}
		snap.Loading = false
		return snap
	})
}

// Subscribe registers for snapshot updates. The returned cancel func
// must be called to release the subscription. The channel is never
// closed: Replace sends outside the store lock, so closing here would
// race a concurrent publish. A canceled subscriber simply stops
// reading; at most the channel buffer is left behind for the GC.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 8)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}
