package app

import (
	"context"
	"fmt"

	"github.com/kilianp07/designpatterns/config"
	"github.com/kilianp07/designpatterns/core/builder"
	"github.com/kilianp07/designpatterns/core/document"
	"github.com/kilianp07/designpatterns/core/factory"
	"github.com/kilianp07/designpatterns/core/gui"
	coremetrics "github.com/kilianp07/designpatterns/core/metrics"
	"github.com/kilianp07/designpatterns/core/prototype"
	"github.com/kilianp07/designpatterns/core/singleton"
	"github.com/kilianp07/designpatterns/core/support"
	"github.com/kilianp07/designpatterns/infra/logger"
	"github.com/kilianp07/designpatterns/infra/metrics"
	"github.com/kilianp07/designpatterns/internal/eventbus"
)

// Service wires every pattern to the configured logger and metrics sinks.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	sink      coremetrics.MetricsSink
	documents *factory.Registry[document.Document]
	gui       gui.Factory
	chain     support.Handler
	outcomes  *eventbus.Bus[support.Outcome]
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	newLog := func(component string) (logger.Logger, error) {
		return logger.FromConfig(component, cfg.Logging.Backend, cfg.Logging.Level)
	}
	logg, err := newLog("service")
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	docLog, err := newLog("document")
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	docs := factory.NewRegistry[document.Document]()
	if err := document.NewFactory(docLog, sink).Register(docs); err != nil {
		return nil, fmt.Errorf("document registry: %w", err)
	}

	guiLog, err := newLog("gui")
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	supportLog, err := newLog("support")
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	bus := eventbus.New[support.Outcome]()
	chain := support.ChainFor(cfg.Support.RequestTypes(),
		support.WithLogger(supportLog),
		support.WithMetrics(coremetrics.Dispatcher(sink)),
		support.WithPublisher(bus),
	)

	return &Service{
		cfg:       cfg,
		log:       logg,
		sink:      sink,
		documents: docs,
		gui:       gui.NewFactory(cfg.GUI.OS(), guiLog, sink),
		chain:     chain,
		outcomes:  bus,
	}, nil
}

// Outcomes returns the bus on which every support Outcome is published.
func (s *Service) Outcomes() *eventbus.Bus[support.Outcome] { return s.outcomes }

// Documents opens, saves and closes every configured document.
func (s *Service) Documents() ([]document.Document, error) {
	out := make([]document.Document, 0, len(s.cfg.Documents))
	for _, mc := range s.cfg.Documents {
		d, err := s.documents.Create(mc)
		if err != nil {
			return nil, fmt.Errorf("create document %s: %w", mc.Type, err)
		}
		d.Open()
		d.Save()
		d.Close()
		out = append(out, d)
	}
	return out, nil
}

// RenderGUI creates and renders one widget of each kind.
func (s *Service) RenderGUI() []gui.Widget {
	widgets := []gui.Widget{s.gui.CreateInput(), s.gui.CreateButton(), s.gui.CreateCheckbox()}
	for _, w := range widgets {
		w.Render()
	}
	return widgets
}

// Dispatch sends r through the configured support chain.
func (s *Service) Dispatch(r support.Request) support.Outcome {
	return s.chain.Handle(r)
}

// SampleRequests returns one request per RequestType.
func SampleRequests() []support.Request {
	return []support.Request{
		support.NewRequest(support.Billing, "Refund not initiated."),
		support.NewRequest(support.Technical, "Unable to login."),
		support.NewRequest(support.Product, "Discount on Product."),
		support.NewRequest(support.General, "Coupon expiration duration."),
		support.NewRequest(support.Complaint, "Delay in delivery."),
	}
}

// BuildPerson runs the builder with the sample values.
func (s *Service) BuildPerson() *builder.Person {
	return builder.NewBasicPersonBuilder(builder.WithMetrics(s.sink), builder.WithLogger(s.log)).
		SetName("Anshuman").
		SetAge(26).
		SetGender("M").
		SetAddress("Pune").
		Build()
}

// CopyPerson duplicates a sample person and mutates the copy.
func (s *Service) CopyPerson() (orig, cp *prototype.Person) {
	orig = prototype.NewPerson("Anshuman", 26, "Pune", []string{"Movies", "Photography"})
	cp = orig.Copy()
	cp.SetAge(27)
	cp.SetAddress("Pashan")
	cp.AddHobby("Music")
	s.recordCreation(coremetrics.PatternPrototype, "person")
	return orig, cp
}

// SingletonIDs returns the identity marker of every singleton discipline.
func (s *Service) SingletonIDs() map[string]string {
	ids := map[string]string{
		"eager":       singleton.EagerInstance().ID(),
		"thread_safe": singleton.ThreadSafeInstance().ID(),
		"clone_safe":  singleton.CloneSafeInstance().Clone().ID(),
		"guarded":     singleton.GuardedInstance().ID(),
		"serial_safe": singleton.SerialSafeInstance().ID(),
	}
	// single goroutine, so the unsafe variant is fine here
	ids["unsafe_lazy"] = singleton.UnsafeLazyInstance().ID()
	for kind := range ids {
		s.recordCreation(coremetrics.PatternSingleton, kind)
	}
	return ids
}

func (s *Service) recordCreation(pattern, kind string) {
	if err := s.sink.RecordCreation(coremetrics.CreationEvent{Pattern: pattern, Kind: kind}); err != nil {
		s.log.Warnf("record creation: %v", err)
	}
}

// Run exercises every pattern once. When a metrics listen address is
// configured it then serves Prometheus metrics until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if _, err := s.Documents(); err != nil {
		return err
	}
	s.RenderGUI()

	p := s.BuildPerson()
	s.log.Infof("built %s", p)

	orig, cp := s.CopyPerson()
	s.log.Infof("prototype original hobbies=%v copy hobbies=%v", orig.Hobbies(), cp.Hobbies())

	for _, r := range SampleRequests() {
		out := s.Dispatch(r)
		s.log.Debugw("support outcome", map[string]any{"handler": out.Handler, "handled": out.Handled, "query": r.Query})
	}

	for kind, id := range s.SingletonIDs() {
		s.log.Infof("singleton %s id=%s", kind, id)
	}

	if s.cfg.Metrics.ListenAddr == "" {
		return nil
	}
	s.log.Infof("serving metrics on %s", s.cfg.Metrics.ListenAddr)
	return metrics.StartPromServer(ctx, s.cfg.Metrics.ListenAddr)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.outcomes.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
