package reserve

import (
	"sync"
	"sync/atomic"
)

// State is the allocator state shared by every logging call on one log
// buffer. The engine owns exactly one State per header; strategies are
// stateless apart from it (Mutex carries its lock).
type State struct {
	// Index is the next free word offset. It may temporarily exceed
	// Capacity by up to one reservation; Limit re-normalizes on load.
	Index atomic.Uint32

	// Capacity is the logical buffer size in words, excluding the guard
	// words.
	Capacity uint32

	// Mask is Capacity-1 when Capacity is a power of two, else 0.
	Mask uint32

	// SingleShot gates the buffer-full check. Toggled by the lifecycle
	// manager, read on every reservation attempt.
	SingleShot atomic.Bool

	// OnFull, when non-nil, runs each time a single-shot reservation is
	// refused. The engine installs a hook that disables the message
	// filter, freezing the buffer contents.
	OnFull func()
}

// Limit normalizes a raw index into [0, Capacity).
func (s *State) Limit(idx uint32) uint32 {
	if s.Mask != 0 {
		return idx & s.Mask
	}
	if idx >= s.Capacity {
		return 0
	}
	return idx
}

// full handles a refused single-shot reservation.
func (s *State) full() (uint32, bool) {
	if s.OnFull != nil {
		s.OnFull()
	}
	return 0, false
}

// Strategy reserves space in the circular buffer. Implementations must be
// safe for the concurrency level they document; see the package comment.
type Strategy interface {
	Reserve(s *State, words uint32) (idx uint32, ok bool)
}

// CAS reserves space with a compare-and-swap retry loop. Safe for any
// number of concurrent callers and the only strategy besides Mutex that
// supports single-shot mode.
type CAS struct{}

func (CAS) Reserve(s *State, words uint32) (uint32, bool) {
	for {
		raw := s.Index.Load()
		idx := raw
		if s.SingleShot.Load() {
			if idx+words >= s.Capacity {
				return s.full()
			}
		}
		idx = s.Limit(idx)
		if s.Index.CompareAndSwap(raw, idx+words) {
			return idx, true
		}
	}
}

// FetchAdd reserves space with a single wait-free atomic add. Valid only
// for power-of-two capacities in post-mortem mode; record.New enforces
// both.
type FetchAdd struct{}

func (FetchAdd) Reserve(s *State, words uint32) (uint32, bool) {
	return (s.Index.Add(words) - words) & s.Mask, true
}

// Mutex reserves space inside a short critical section. The Go analog of
// the interrupt-masking reservation: correct for concurrent goroutines,
// but the lock is held across the read-modify-write only, never across
// data writes.
type Mutex struct {
	mu sync.Mutex
}

func (m *Mutex) Reserve(s *State, words uint32) (uint32, bool) {
	m.mu.Lock()
	idx := s.Index.Load()
	if s.SingleShot.Load() {
		if idx+words >= s.Capacity {
			m.mu.Unlock()
			return s.full()
		}
	}
	idx = s.Limit(idx)
	s.Index.Store(idx + words)
	m.mu.Unlock()
	return idx, true
}

// Unguarded reserves space with no synchronization. Opt-in: valid only
// when logging is never invoked from two execution contexts at once.
type Unguarded struct{}

func (Unguarded) Reserve(s *State, words uint32) (uint32, bool) {
	idx := s.Index.Load()
	if s.SingleShot.Load() {
		if idx+words >= s.Capacity {
			return s.full()
		}
	}
	idx = s.Limit(idx)
	s.Index.Store(idx + words)
	return idx, true
}
