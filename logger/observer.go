package logger

import (
	"context"
	"time"

	"github.com/goforj/flyweight"
)

// Observer logs flyweight events: constructions at info, failures at warn and
// everything else at debug.
func Observer(l Logger) flyweight.Observer {
	if l == nil {
		l = NopLogger{}
	}
	return flyweight.ObserverFunc(func(_ context.Context, name string, op flyweight.Op, key string, hit bool, err error, dur time.Duration) {
		fields := map[string]any{
			"cache": name,
			"op":    string(op),
			"key":   key,
			"took":  dur.String(),
		}
		switch {
		case err != nil:
			l.Warnf("%s %s %q failed: %v", name, op, key, err)
		case op == flyweight.OpConstruct:
			l.Infow("["+key+"] created", fields)
		default:
			fields["hit"] = hit
			l.Debugw(string(op), fields)
		}
	})
}
