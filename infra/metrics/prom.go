package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/designpatterns/core/metrics"
)

// PromSink records pattern events in Prometheus metrics.
type PromSink struct {
	creations *prometheus.CounterVec
	dispatch  *prometheus.CounterVec
}

// NewPromSink registers the pattern metrics on the default registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry("", prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the pattern metrics on reg. If reg is nil,
// the default registerer is used. If the collectors are already registered,
// the existing ones are reused.
func NewPromSinkWithRegistry(namespace string, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	creations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pattern_creations_total",
		Help:      "Total number of objects produced by creational patterns",
	}, []string{"pattern", "kind", "family"})
	dispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "support_requests_total",
		Help:      "Total number of support requests serviced per handler",
	}, []string{"handler", "request_type", "handled"})

	var err error
	if creations, err = registerCounter(reg, creations); err != nil {
		return nil, err
	}
	if dispatch, err = registerCounter(reg, dispatch); err != nil {
		return nil, err
	}
	return &PromSink{creations: creations, dispatch: dispatch}, nil
}

func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

// RecordCreation increments the creation counter.
func (s *PromSink) RecordCreation(ev coremetrics.CreationEvent) error {
	s.creations.WithLabelValues(ev.Pattern, ev.Kind, ev.Family).Inc()
	return nil
}

// RecordDispatch increments the dispatch counter for the servicing handler.
func (s *PromSink) RecordDispatch(ev coremetrics.DispatchEvent) error {
	s.dispatch.WithLabelValues(ev.Handler, ev.RequestType, strconv.FormatBool(ev.Handled)).Inc()
	return nil
}
