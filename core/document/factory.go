package document

import (
	"fmt"
	"time"

	"github.com/kilianp07/designpatterns/core/factory"
	"github.com/kilianp07/designpatterns/core/logger"
	"github.com/kilianp07/designpatterns/core/metrics"
)

// Factory creates documents and reports every creation to a metrics sink.
type Factory struct {
	log  logger.Logger
	sink metrics.MetricsSink
}

// NewFactory returns a Factory. A nil logger discards messages and a nil sink
// disables metrics.
func NewFactory(log logger.Logger, sink metrics.MetricsSink) *Factory {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Factory{log: log, sink: sink}
}

// Create returns the Document implementation mapped to t.
func (f *Factory) Create(t Type) Document {
	return f.CreateNamed(t, "")
}

// CreateNamed is Create with a document name.
func (f *Factory) CreateNamed(t Type, name string) Document {
	var d Document
	switch t {
	case TypeReport:
		d = NewReport(name, f.log)
	case TypeSpreadsheet:
		d = NewSpreadsheet(name, f.log)
	case TypePresentation:
		d = NewPresentation(name, f.log)
	default:
		panic(fmt.Sprintf("document: no implementation for type %d", int(t)))
	}
	if err := f.sink.RecordCreation(metrics.CreationEvent{
		Pattern: metrics.PatternFactory,
		Kind:    t.String(),
		Time:    time.Now(),
	}); err != nil {
		f.log.Warnf("record creation: %v", err)
	}
	return d
}

// Register adds one registry entry per Type, keyed by Type.String(). The
// optional "name" setting is decoded into the document name.
func (f *Factory) Register(reg *factory.Registry[Document]) error {
	for _, t := range Types {
		t := t
		err := reg.Register(t.String(), func(conf map[string]any) (Document, error) {
			var c struct {
				Name string `json:"name"`
			}
			if err := factory.Decode(conf, &c); err != nil {
				return nil, fmt.Errorf("decode %s: %w", t, err)
			}
			return f.CreateNamed(t, c.Name), nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
