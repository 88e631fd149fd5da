package document

import "github.com/kilianp07/designpatterns/core/logger"

// Document is the capability produced by the factory.
type Document interface {
	Kind() Type
	Name() string
	Open()
	Save()
	Close()
}

// base carries what every document shares; the label is what the log lines
// call the document.
type base struct {
	name  string
	label string
	log   logger.Logger
}

func (b base) Name() string { return b.name }

func newBase(name, label string, log logger.Logger) base {
	if log == nil {
		log = logger.NopLogger{}
	}
	return base{name: name, label: label, log: log}
}

func (b base) Open()  { b.log.Infof("Opening %s.", b.label) }
func (b base) Save()  { b.log.Infof("Saving %s.", b.label) }
func (b base) Close() { b.log.Infof("Closing %s.", b.label) }

// Report is a text document.
type Report struct{ base }

// NewReport returns a Report logging to log.
func NewReport(name string, log logger.Logger) *Report {
	return &Report{newBase(name, "Report", log)}
}

func (*Report) Kind() Type { return TypeReport }

// Spreadsheet is a tabular document.
type Spreadsheet struct{ base }

// NewSpreadsheet returns a Spreadsheet logging to log.
func NewSpreadsheet(name string, log logger.Logger) *Spreadsheet {
	return &Spreadsheet{newBase(name, "SpreadSheet", log)}
}

func (*Spreadsheet) Kind() Type { return TypeSpreadsheet }

// Presentation is a slide deck.
type Presentation struct{ base }

// NewPresentation returns a Presentation logging to log.
func NewPresentation(name string, log logger.Logger) *Presentation {
	return &Presentation{newBase(name, "Presentation", log)}
}

func (*Presentation) Kind() Type { return TypePresentation }
