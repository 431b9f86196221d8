package flyweight

import (
	"context"
	"time"
)

// Op identifies the operation reported to an Observer.
type Op string

const (
	// OpGet is reported once per Cache.Get call, hit or miss.
	OpGet Op = "get"
	// OpConstruct is reported exactly once per distinct key, when its value is built.
	OpConstruct Op = "construct"
	// OpCreate is reported once per Dispatcher.Create call.
	OpCreate Op = "create"
)

// Observer receives events for cache and dispatcher operations.
// It is called after each operation completes, outside of any lock.
type Observer interface {
	OnCacheOp(ctx context.Context, name string, op Op, key string, hit bool, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, name string, op Op, key string, hit bool, err error, dur time.Duration)

// OnCacheOp implements Observer.
func (f ObserverFunc) OnCacheOp(ctx context.Context, name string, op Op, key string, hit bool, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(ctx, name, op, key, hit, err, dur)
}

// MultiObserver fans every event out to observers in order. Nil entries are skipped.
func MultiObserver(observers ...Observer) Observer {
	out := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type multiObserver []Observer

func (m multiObserver) OnCacheOp(ctx context.Context, name string, op Op, key string, hit bool, err error, dur time.Duration) {
	for _, o := range m {
		o.OnCacheOp(ctx, name, op, key, hit, err, dur)
	}
}

func observe(ctx context.Context, o Observer, name string, op Op, key string, hit bool, err error, start time.Time) {
	if o == nil {
		return
	}
	o.OnCacheOp(ctx, name, op, key, hit, err, time.Since(start))
}
