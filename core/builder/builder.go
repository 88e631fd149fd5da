package builder

import (
	"time"

	"github.com/kilianp07/designpatterns/core/logger"
	"github.com/kilianp07/designpatterns/core/metrics"
)

// PersonBuilder accumulates Person fields across chained calls.
type PersonBuilder interface {
	SetName(name string) PersonBuilder
	SetAge(age int) PersonBuilder
	SetGender(gender string) PersonBuilder
	SetAddress(address string) PersonBuilder
	// Build returns a new Person from the accumulated state. The builder keeps
	// its state, so Build may be called again.
	Build() *Person
}

// BasicPersonBuilder is the default PersonBuilder.
type BasicPersonBuilder struct {
	name    *string
	age     int
	gender  *string
	address *string
	sink    metrics.MetricsSink
	log     logger.Logger
}

// Option configures a BasicPersonBuilder.
type Option func(*BasicPersonBuilder)

// WithMetrics reports every Build call to sink.
func WithMetrics(sink metrics.MetricsSink) Option {
	return func(b *BasicPersonBuilder) { b.sink = sink }
}

// WithLogger sets the logger used to report metrics failures.
func WithLogger(log logger.Logger) Option {
	return func(b *BasicPersonBuilder) { b.log = log }
}

// NewBasicPersonBuilder returns an empty builder.
func NewBasicPersonBuilder(opts ...Option) *BasicPersonBuilder {
	b := &BasicPersonBuilder{sink: metrics.NopSink{}, log: logger.NopLogger{}}
	for _, opt := range opts {
		opt(b)
	}
	if b.sink == nil {
		b.sink = metrics.NopSink{}
	}
	if b.log == nil {
		b.log = logger.NopLogger{}
	}
	return b
}

func (b *BasicPersonBuilder) SetName(name string) PersonBuilder {
	b.name = &name
	return b
}

func (b *BasicPersonBuilder) SetAge(age int) PersonBuilder {
	b.age = age
	return b
}

func (b *BasicPersonBuilder) SetGender(gender string) PersonBuilder {
	b.gender = &gender
	return b
}

func (b *BasicPersonBuilder) SetAddress(address string) PersonBuilder {
	b.address = &address
	return b
}

func (b *BasicPersonBuilder) Build() *Person {
	if err := b.sink.RecordCreation(metrics.CreationEvent{
		Pattern: metrics.PatternBuilder,
		Kind:    "person",
		Time:    time.Now(),
	}); err != nil {
		b.log.Warnf("record creation: %v", err)
	}
	return &Person{
		name:    clone(b.name),
		age:     b.age,
		gender:  clone(b.gender),
		address: clone(b.address),
	}
}

// clone keeps built values independent of later Set calls.
func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
