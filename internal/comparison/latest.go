package comparison

import (
	"sync"

	"solana-signal-lab/internal/domain"
)

// Ticket identifies one recomputation request for a view.
type Ticket struct {
	Key string
	Seq uint64
}

// Latest keeps the most recent bundle per view key.
//
// Each recomputation takes a ticket before fetching. A bundle is stored only
// if its ticket is still the newest issued for that key, so a request that
// started earlier but finished later cannot overwrite fresher data.
type Latest struct {
	mu      sync.Mutex
	issued  map[string]uint64
	current map[string]entry
}

type entry struct {
	seq    uint64
	bundle domain.Bundle
}

// NewLatest creates an empty Latest.
func NewLatest() *Latest {
	return &Latest{
		issued:  make(map[string]uint64),
		current: make(map[string]entry),
	}
}

// Begin issues a new ticket for key, superseding all earlier tickets.
func (l *Latest) Begin(key string) Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.issued[key]++
	return Ticket{Key: key, Seq: l.issued[key]}
}

// Commit stores bundle if t is still the newest ticket for its key.
// Returns false when the result is stale and was discarded.
func (l *Latest) Commit(t Ticket, bundle domain.Bundle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.issued[t.Key] != t.Seq {
		return false
	}
	l.current[t.Key] = entry{seq: t.Seq, bundle: bundle}
	return true
}

// IsCurrent reports whether t has not been superseded.
func (l *Latest) IsCurrent(t Ticket) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.issued[t.Key] == t.Seq
}

// Current returns the last committed bundle for key.
func (l *Latest) Current(key string) (domain.Bundle, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.current[key]
	if !ok {
		return domain.Bundle{}, false
	}
	return e.bundle, true
}

// Forget drops state for key.
func (l *Latest) Forget(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.current, key)
}
