package flyweightfake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goforj/flyweight"
)

// Fake is a flyweight.Observer that records every event for assertions.
// Attach it with flyweight.WithObserver(fake).
type Fake struct {
	counts map[flyweight.Op]map[string]int
	errs   map[flyweight.Op]int
	mu     sync.Mutex
}

var _ flyweight.Observer = (*Fake)(nil)

// New creates an empty Fake.
func New() *Fake {
	return &Fake{
		counts: make(map[flyweight.Op]map[string]int),
		errs:   make(map[flyweight.Op]int),
	}
}

// OnCacheOp implements flyweight.Observer.
func (f *Fake) OnCacheOp(_ context.Context, _ string, op flyweight.Op, key string, _ bool, err error, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][key]++
	if err != nil {
		f.errs[op]++
	}
}

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[flyweight.Op]map[string]int)
	f.errs = make(map[flyweight.Op]int)
}

// AssertCalled verifies key was seen by op the expected number of times.
func (f *Fake) AssertCalled(t testing.TB, op flyweight.Op, key string, times int) {
	t.Helper()
	if got := f.Count(op, key); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, key, times, got)
	}
}

// AssertNotCalled ensures key was never seen by op.
func (f *Fake) AssertNotCalled(t testing.TB, op flyweight.Op, key string) {
	t.Helper()
	if got := f.Count(op, key); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, key, got)
	}
}

// AssertTotal ensures the total event count for an op matches times.
func (f *Fake) AssertTotal(t testing.TB, op flyweight.Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns events for op+key.
func (f *Fake) Count(op flyweight.Op, key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		return 0
	}
	return f.counts[op][key]
}

// Total returns total events for an op across keys.
func (f *Fake) Total(op flyweight.Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

// Errors returns how many events for op carried an error.
func (f *Fake) Errors(op flyweight.Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[op]
}
