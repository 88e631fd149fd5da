// Package metrics defines interfaces for collecting pattern metrics. Sinks
// like PromSink and InfluxSink record creation events emitted by the
// factories and dispatch events emitted by the support chain, and can be
// combined with NewMultiSink. The factory helpers return a MultiSink
// automatically when multiple sinks are configured.
package metrics
