package comparison

import (
	"sync"
	"testing"

	"solana-signal-lab/internal/domain"
)

func bundleWithLength(n int) domain.Bundle {
	return domain.Bundle{MaxLength: n}
}

func TestLatest_OutOfOrderCompletion(t *testing.T) {
	l := NewLatest()

	first := l.Begin("view")
	second := l.Begin("view")

	// The newer request finishes first.
	if !l.Commit(second, bundleWithLength(2)) {
		t.Fatal("expected newest ticket to commit")
	}
	// The older one arrives late and must be discarded.
	if l.Commit(first, bundleWithLength(1)) {
		t.Error("expected stale ticket to be rejected")
	}

	got, ok := l.Current("view")
	if !ok || got.MaxLength != 2 {
		t.Errorf("expected bundle from newest request, got %+v (ok=%v)", got, ok)
	}
}

func TestLatest_KeysAreIndependent(t *testing.T) {
	l := NewLatest()

	a := l.Begin("a")
	_ = l.Begin("b")

	if !l.Commit(a, bundleWithLength(3)) {
		t.Error("expected commit on key a to succeed")
	}
	if _, ok := l.Current("b"); ok {
		t.Error("expected no bundle for key b")
	}
}

func TestLatest_IsCurrent(t *testing.T) {
	l := NewLatest()
	t1 := l.Begin("k")
	if !l.IsCurrent(t1) {
		t.Error("expected fresh ticket to be current")
	}
	_ = l.Begin("k")
	if l.IsCurrent(t1) {
		t.Error("expected superseded ticket to not be current")
	}
}

func TestLatest_ForgetKeepsSequence(t *testing.T) {
	l := NewLatest()
	old := l.Begin("k")
	l.Forget("k")
	_ = l.Begin("k")

	if l.Commit(old, bundleWithLength(1)) {
		t.Error("expected ticket issued before Forget to stay stale")
	}
}

func TestLatest_Concurrent(t *testing.T) {
	l := NewLatest()

	var wg sync.WaitGroup
	tickets := make([]Ticket, 50)
	for i := range tickets {
		tickets[i] = l.Begin("k")
	}
	last := tickets[len(tickets)-1]

	for i, tk := range tickets {
		wg.Add(1)
		go func(i int, tk Ticket) {
			defer wg.Done()
			l.Commit(tk, bundleWithLength(i))
		}(i, tk)
	}
	wg.Wait()

	got, ok := l.Current("k")
	if !ok || got.MaxLength != int(last.Seq)-1 {
		t.Errorf("expected bundle of last ticket, got %+v", got)
	}
}
