// Package metrics records flyweight cache and dispatcher activity in Prometheus collectors.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goforj/flyweight"
)

// PromObserver is a flyweight.Observer backed by Prometheus collectors.
type PromObserver struct {
	ops           *prometheus.CounterVec
	constructions *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

var _ flyweight.Observer = (*PromObserver)(nil)

// NewPromObserver registers flyweight metrics on reg. If reg is nil, the default
// registerer is used. Collectors that are already registered are reused.
func NewPromObserver(reg prometheus.Registerer) (*PromObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flyweight_operations_total",
		Help: "Total number of flyweight cache and dispatcher operations",
	}, []string{"cache", "op", "result"})
	constructions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flyweight_constructions_total",
		Help: "Total number of shared instances constructed",
	}, []string{"cache"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flyweight_operation_duration_seconds",
		Help:    "Duration of flyweight operations",
		Buckets: prometheus.ExponentialBuckets(1e-7, 10, 7),
	}, []string{"cache", "op"})

	var err error
	if ops, err = register(reg, ops); err != nil {
		return nil, err
	}
	if constructions, err = register(reg, constructions); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	return &PromObserver{ops: ops, constructions: constructions, latency: latency}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// OnCacheOp implements flyweight.Observer.
func (o *PromObserver) OnCacheOp(_ context.Context, name string, op flyweight.Op, _ string, hit bool, err error, dur time.Duration) {
	if op == flyweight.OpConstruct {
		o.constructions.WithLabelValues(name).Inc()
		return
	}
	o.ops.WithLabelValues(name, string(op), result(hit, err)).Inc()
	o.latency.WithLabelValues(name, string(op)).Observe(dur.Seconds())
}

func result(hit bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case hit:
		return "hit"
	default:
		return "miss"
	}
}
