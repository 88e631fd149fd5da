package metrics

import (
	"errors"
	"testing"
)

// TestMultiSink ensures events are forwarded to all sinks.

type recordSink struct {
	count int
}

func (r *recordSink) RecordCreation(CreationEvent) error {
	r.count++
	return nil
}

func (r *recordSink) RecordDispatch(DispatchEvent) error {
	r.count++
	return nil
}

type creationOnly struct{ count int }

func (c *creationOnly) RecordCreation(CreationEvent) error {
	c.count++
	return nil
}

type failingSink struct{}

func (failingSink) RecordCreation(CreationEvent) error { return errors.New("boom") }

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	s3 := &creationOnly{}
	m := NewMultiSink(s1, s2, s3)
	if err := m.RecordCreation(CreationEvent{Pattern: PatternFactory}); err != nil {
		t.Fatalf("record creation: %v", err)
	}
	if err := m.RecordDispatch(DispatchEvent{Handler: "billing"}); err != nil {
		t.Fatalf("record dispatch: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("events not forwarded")
	}
	if s3.count != 1 {
		t.Fatalf("expected creation-only sink to see 1 event, got %d", s3.count)
	}
}

func TestMultiSink_Error(t *testing.T) {
	after := &recordSink{}
	m := NewMultiSink(failingSink{}, after)
	if err := m.RecordCreation(CreationEvent{}); err == nil {
		t.Fatal("expected error")
	}
	if after.count != 0 {
		t.Fatal("sink after failure should not be called")
	}
}

func TestDispatcher(t *testing.T) {
	if _, ok := Dispatcher(&creationOnly{}).(NopSink); !ok {
		t.Fatal("expected NopSink fallback")
	}
	rs := &recordSink{}
	if Dispatcher(rs) != DispatchRecorder(rs) {
		t.Fatal("expected sink itself")
	}
}

type closingSink struct {
	creationOnly
	closed bool
}

func (c *closingSink) Close() { c.closed = true }

func TestMultiSink_Close(t *testing.T) {
	a := &closingSink{}
	b := &closingSink{}
	m := NewMultiSink(a, &recordSink{}, b)
	m.Close()
	if !a.closed || !b.closed {
		t.Fatalf("expected every closable sink to be closed, got %v %v", a.closed, b.closed)
	}
}
