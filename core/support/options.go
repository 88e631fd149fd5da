package support

import (
	"time"

	"github.com/kilianp07/designpatterns/core/logger"
	"github.com/kilianp07/designpatterns/core/metrics"
	"github.com/kilianp07/designpatterns/internal/eventbus"
)

type observers struct {
	log logger.Logger
	rec metrics.DispatchRecorder
	pub eventbus.Publisher[Outcome]
}

// Option configures the observers notified when a handler services a request.
type Option func(*observers)

// WithLogger sets the logger used for dispatch messages.
func WithLogger(l logger.Logger) Option {
	return func(o *observers) { o.log = l }
}

// WithMetrics records one DispatchEvent per serviced request.
func WithMetrics(r metrics.DispatchRecorder) Option {
	return func(o *observers) { o.rec = r }
}

// WithPublisher publishes every Outcome on p.
func WithPublisher(p eventbus.Publisher[Outcome]) Option {
	return func(o *observers) { o.pub = p }
}

func newObservers(opts []Option) observers {
	o := observers{log: logger.NopLogger{}, rec: metrics.NopSink{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.NopLogger{}
	}
	if o.rec == nil {
		o.rec = metrics.NopSink{}
	}
	return o
}

func (o observers) notify(out Outcome) Outcome {
	if err := o.rec.RecordDispatch(metrics.DispatchEvent{
		Handler:     out.Handler,
		RequestType: out.Request.Type.String(),
		Handled:     out.Handled,
		Time:        time.Now(),
	}); err != nil {
		o.log.Warnf("record dispatch: %v", err)
	}
	if o.pub != nil {
		o.pub.Publish(out)
	}
	return out
}
