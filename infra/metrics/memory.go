package metrics

import (
	"sync"

	coremetrics "github.com/kilianp07/designpatterns/core/metrics"
)

// MemorySink keeps every event in memory. It is used by tests and by the demo
// CLI to print a summary.
type MemorySink struct {
	mu        sync.Mutex
	creations []coremetrics.CreationEvent
	dispatch  []coremetrics.DispatchEvent
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink { return &MemorySink{} }

func (m *MemorySink) RecordCreation(ev coremetrics.CreationEvent) error {
	m.mu.Lock()
	m.creations = append(m.creations, ev)
	m.mu.Unlock()
	return nil
}

func (m *MemorySink) RecordDispatch(ev coremetrics.DispatchEvent) error {
	m.mu.Lock()
	m.dispatch = append(m.dispatch, ev)
	m.mu.Unlock()
	return nil
}

// Creations returns a copy of the recorded creation events.
func (m *MemorySink) Creations() []coremetrics.CreationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]coremetrics.CreationEvent(nil), m.creations...)
}

// Dispatches returns a copy of the recorded dispatch events.
func (m *MemorySink) Dispatches() []coremetrics.DispatchEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]coremetrics.DispatchEvent(nil), m.dispatch...)
}
