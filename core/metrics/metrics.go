package metrics

import "time"

// Pattern names used in CreationEvent.Pattern.
const (
	PatternFactory         = "factory"
	PatternAbstractFactory = "abstract_factory"
	PatternBuilder         = "builder"
	PatternPrototype       = "prototype"
	PatternSingleton       = "singleton"
)

// CreationEvent records that a pattern produced an object.
type CreationEvent struct {
	Pattern string
	// Kind is the concrete variant produced, e.g. "report" or "button".
	Kind string
	// Family is set by the abstract factory only.
	Family string
	Time   time.Time
}

// DispatchEvent records which handler of a support chain serviced a request.
type DispatchEvent struct {
	Handler     string
	RequestType string
	Handled     bool
	Time        time.Time
}

// MetricsSink records creation events for observability purposes.
type MetricsSink interface {
	RecordCreation(ev CreationEvent) error
}

// DispatchRecorder records support chain dispatch outcomes.
type DispatchRecorder interface {
	RecordDispatch(ev DispatchEvent) error
}

// NopSink implements MetricsSink and DispatchRecorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordCreation(CreationEvent) error { return nil }
func (NopSink) RecordDispatch(DispatchEvent) error { return nil }
