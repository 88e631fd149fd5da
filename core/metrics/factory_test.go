package metrics_test

import (
	"testing"

	"github.com/kilianp07/designpatterns/core/factory"
	metrics "github.com/kilianp07/designpatterns/core/metrics"
	inframetrics "github.com/kilianp07/designpatterns/infra/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

/*
TestMetricsFactory_Builtins verifies registration via infra/metrics/factory.go.

	Cases:
	- instantiate builtin nop sink
	- unknown type returns error
*/
func TestMetricsFactory_Builtins(t *testing.T) {
	s, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}})
	if err != nil {
		t.Fatalf("create nop: %v", err)
	}
	if s == nil {
		t.Fatal("expected sink instance")
	}
	if _, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

/*
TestNewMetricsSink_Multi validates NewMetricsSink behavior with zero, one, and multiple configs.
Cases:
  - no config -> NopSink
  - two configs -> MultiSink with two sub-sinks
*/
func TestNewMetricsSink_Multi(t *testing.T) {
	// No config defaults to NopSink
	s, err := metrics.NewMetricsSink(nil)
	if err != nil {
		t.Fatalf("create nop default: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}

	// Multiple configs returns MultiSink
	cfgs := []factory.ModuleConfig{{Type: "nop"}, {Type: "memory"}}
	s, err = metrics.NewMetricsSink(cfgs)
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	m, ok := s.(*metrics.MultiSink)
	if !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if len(m.Sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(m.Sinks))
	}
}

// TestMetricsFactory_Prometheus builds the prometheus sink from a namespace conf
// and checks the namespaced counter on the default registry.
func TestMetricsFactory_Prometheus(t *testing.T) {
	s, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"namespace": "factorytest"}}})
	if err != nil {
		t.Fatalf("create prometheus: %v", err)
	}
	if _, ok := s.(*inframetrics.PromSink); !ok {
		t.Fatalf("expected PromSink, got %T", s)
	}
	if err := s.RecordCreation(metrics.CreationEvent{Pattern: metrics.PatternFactory, Kind: "report"}); err != nil {
		t.Fatalf("record creation: %v", err)
	}
	n, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "factorytest_pattern_creations_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 series, got %d", n)
	}
}

// TestDispatcher_FromBuiltSink checks that dispatch events reach the memory
// sinks behind a configured MultiSink, and that a creation-only sink yields a
// NopSink recorder.
func TestDispatcher_FromBuiltSink(t *testing.T) {
	s, err := metrics.NewMetricsSink([]factory.ModuleConfig{{Type: "memory"}, {Type: "memory"}})
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	rec := metrics.Dispatcher(s)
	if err := rec.RecordDispatch(metrics.DispatchEvent{Handler: "billing", RequestType: "BILLING", Handled: true}); err != nil {
		t.Fatalf("record dispatch: %v", err)
	}
	for i, child := range s.(*metrics.MultiSink).Sinks {
		mem := child.(*inframetrics.MemorySink)
		if got := len(mem.Dispatches()); got != 1 {
			t.Fatalf("sink %d: expected 1 dispatch, got %d", i, got)
		}
	}

	if _, ok := metrics.Dispatcher(creationOnlySink{}).(metrics.NopSink); !ok {
		t.Fatal("expected NopSink for a creation-only sink")
	}
}

type creationOnlySink struct{}

func (creationOnlySink) RecordCreation(metrics.CreationEvent) error { return nil }
