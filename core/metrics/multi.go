package metrics

// MultiSink fanouts events to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCreation forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordCreation(ev CreationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordCreation(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordDispatch forwards dispatch events to the sinks that support them.
func (m *MultiSink) RecordDispatch(ev DispatchEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(DispatchRecorder); ok {
			if err := rec.RecordDispatch(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes every child sink that holds resources.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
