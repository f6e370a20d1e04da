package paykit

import (
	"time"

	"github.com/vitwit/paykit/logger"
	"github.com/vitwit/paykit/metrics"
)

type Option func(*Paykit)

// WithLogger injects a logger. The default discards all output.
func WithLogger(l logger.Logger) Option {
	return func(p *Paykit) {
		p.logger = l
	}
}

// WithMetrics injects a metrics recorder. The default discards everything.
func WithMetrics(r metrics.Recorder) Option {
	return func(p *Paykit) {
		p.metrics = r
	}
}

// WithTimeout sets a per-operation deadline applied when the caller's
// context has none. Zero (the default) leaves cancellation entirely to the
// caller.
func WithTimeout(t time.Duration) Option {
	return func(p *Paykit) {
		p.timeout = t
	}
}
