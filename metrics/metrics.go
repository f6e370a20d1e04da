// Package metrics defines the recorder contract paykit reports through,
// with a prometheus-backed implementation and a discard default.
package metrics

import "time"

// Recorder receives operation counters and latencies from paykit.
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
