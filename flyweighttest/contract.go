package flyweighttest

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/goforj/flyweight"
	"github.com/goforj/flyweight/flyweightfake"
)

// Options configures the cache contract checks.
type Options struct {
	// CaseName is used to namespace keys. Defaults to t.Name().
	CaseName string
	// Concurrency is how many goroutines race for one unseen key. Defaults to 128.
	Concurrency int
}

// Factory returns a new, empty cache configured with opts.
type Factory[P any, V comparable] func(opts ...flyweight.Option) *flyweight.Cache[P, V]

// RunCacheContract runs the shared-instance contract against fresh caches from newCache.
// params returns distinct construction parameters for each index.
func RunCacheContract[P any, V comparable](t *testing.T, newCache Factory[P, V], params func(i int) P, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}
	workers := opts.Concurrency
	if workers <= 0 {
		workers = 128
	}
	key := func(s string) string {
		return sanitize(caseName) + ":" + s
	}

	t.Run("same key shares identity", func(t *testing.T) {
		fake := flyweightfake.New()
		c := newCache(flyweight.WithObserver(fake))
		first, err := c.Get(key("alpha"), params(0))
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		second, err := c.Get(key("alpha"), params(1))
		if err != nil {
			t.Fatalf("second get failed: %v", err)
		}
		if first != second {
			t.Fatalf("expected identical value for repeated key")
		}
		fake.AssertCalled(t, flyweight.OpConstruct, key("alpha"), 1)
		fake.AssertCalled(t, flyweight.OpGet, key("alpha"), 2)
	})

	t.Run("distinct keys do not share", func(t *testing.T) {
		c := newCache()
		a, err := c.Get(key("a"), params(0))
		if err != nil {
			t.Fatalf("get a failed: %v", err)
		}
		b, err := c.Get(key("b"), params(0))
		if err != nil {
			t.Fatalf("get b failed: %v", err)
		}
		if a == b {
			t.Fatalf("expected distinct values for distinct keys")
		}
	})

	t.Run("empty key fails before construction", func(t *testing.T) {
		fake := flyweightfake.New()
		c := newCache(flyweight.WithObserver(fake))
		_, err := c.Get("", params(0))
		if !errors.Is(err, flyweight.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
		var typed *flyweight.InvalidKeyError
		if !errors.As(err, &typed) {
			t.Fatalf("expected *InvalidKeyError, got %T", err)
		}
		fake.AssertTotal(t, flyweight.OpConstruct, 0)
		if c.Len() != 0 {
			t.Fatalf("expected empty cache, got %d entries", c.Len())
		}
	})

	t.Run("concurrent first requests construct once", func(t *testing.T) {
		fake := flyweightfake.New()
		c := newCache(flyweight.WithObserver(fake))
		results := make([]V, workers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				v, err := c.Get(key("race"), params(i))
				if err != nil {
					t.Errorf("worker %d: %v", i, err)
					return
				}
				results[i] = v
			}(i)
		}
		close(start)
		wg.Wait()

		fake.AssertCalled(t, flyweight.OpConstruct, key("race"), 1)
		for i := 1; i < workers; i++ {
			if results[i] != results[0] {
				t.Fatalf("worker %d received a different value", i)
			}
		}
	})

	t.Run("keys keep construction order", func(t *testing.T) {
		c := newCache()
		want := []string{key("red"), key("green"), key("blue")}
		for i, k := range []string{key("red"), key("green"), key("red"), key("blue"), key("red")} {
			if _, err := c.Get(k, params(i)); err != nil {
				t.Fatalf("get %q failed: %v", k, err)
			}
		}
		got := c.Keys()
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("expected keys %v, got %v", want, got)
		}
		if c.Len() != len(want) {
			t.Fatalf("expected %d entries, got %d", len(want), c.Len())
		}
	})
}

func sanitize(name string) string {
	return strings.NewReplacer("/", "_", " ", "_").Replace(name)
}
