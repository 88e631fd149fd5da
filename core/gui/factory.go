package gui

import (
	"fmt"
	"time"

	"github.com/kilianp07/designpatterns/core/logger"
	"github.com/kilianp07/designpatterns/core/metrics"
)

// NewFactory returns the widget family for os. An unmapped OS panics. A nil
// logger discards messages and a nil sink disables metrics.
func NewFactory(os OS, log logger.Logger, sink metrics.MetricsSink) Factory {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	r := recorder{family: os, log: log, sink: sink}
	switch os {
	case Windows:
		return &windowsFactory{r}
	case MacOS:
		return &macOSFactory{r}
	default:
		panic(fmt.Sprintf("gui: no factory for family %d", int(os)))
	}
}

type recorder struct {
	family OS
	log    logger.Logger
	sink   metrics.MetricsSink
}

func (r recorder) Family() OS { return r.family }

func (r recorder) record(kind string) {
	if err := r.sink.RecordCreation(metrics.CreationEvent{
		Pattern: metrics.PatternAbstractFactory,
		Kind:    kind,
		Family:  r.family.String(),
		Time:    time.Now(),
	}); err != nil {
		r.log.Warnf("record creation: %v", err)
	}
}

type windowsFactory struct{ recorder }

func (f *windowsFactory) CreateInput() Input {
	f.record("input")
	return &WindowsInput{log: f.log}
}

func (f *windowsFactory) CreateButton() Button {
	f.record("button")
	return &WindowsButton{log: f.log}
}

func (f *windowsFactory) CreateCheckbox() Checkbox {
	f.record("checkbox")
	return &WindowsCheckbox{log: f.log}
}

type macOSFactory struct{ recorder }

func (f *macOSFactory) CreateInput() Input {
	f.record("input")
	return &MacOSInput{log: f.log}
}

func (f *macOSFactory) CreateButton() Button {
	f.record("button")
	return &MacOSButton{log: f.log}
}

func (f *macOSFactory) CreateCheckbox() Checkbox {
	f.record("checkbox")
	return &MacOSCheckbox{log: f.log}
}
