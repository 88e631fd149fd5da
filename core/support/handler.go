package support

// Handler is a node of a support chain. The unexported setNext keeps the set
// of variants closed to TopicHandler and NoSupportHandler.
type Handler interface {
	Name() string
	Handle(r Request) Outcome
	setNext(next Handler)
}

// TopicHandler services requests of a single RequestType.
type TopicHandler struct {
	name  string
	topic RequestType
	next  Handler
	obs   observers
}

// NewTopicHandler returns a handler for topic whose successor is a fresh
// NoSupportHandler until it is linked into a chain.
func NewTopicHandler(name string, topic RequestType, opts ...Option) *TopicHandler {
	obs := newObservers(opts)
	return &TopicHandler{
		name:  name,
		topic: topic,
		next:  &NoSupportHandler{obs: obs},
		obs:   obs,
	}
}

// NewBillingHandler returns the handler for billing requests.
func NewBillingHandler(opts ...Option) *TopicHandler {
	return NewTopicHandler("billing", Billing, opts...)
}

// NewProductHandler returns the handler for product requests.
func NewProductHandler(opts ...Option) *TopicHandler {
	return NewTopicHandler("product", Product, opts...)
}

// NewTechnicalHandler returns the handler for technical requests.
func NewTechnicalHandler(opts ...Option) *TopicHandler {
	return NewTopicHandler("technical", Technical, opts...)
}

// NewGeneralHandler returns the handler for general requests.
func NewGeneralHandler(opts ...Option) *TopicHandler {
	return NewTopicHandler("general", General, opts...)
}

// NewHandlerFor returns the standard handler for t. Complaint has no
// dedicated handler and gets a NoSupportHandler.
func NewHandlerFor(t RequestType, opts ...Option) Handler {
	switch t {
	case Billing:
		return NewBillingHandler(opts...)
	case Product:
		return NewProductHandler(opts...)
	case Technical:
		return NewTechnicalHandler(opts...)
	case General:
		return NewGeneralHandler(opts...)
	default:
		return NewNoSupportHandler(opts...)
	}
}

func (h *TopicHandler) Name() string { return h.name }

// Topic returns the request type serviced by h.
func (h *TopicHandler) Topic() RequestType { return h.topic }

// Next returns the successor of h.
func (h *TopicHandler) Next() Handler { return h.next }

func (h *TopicHandler) Handle(r Request) Outcome {
	if r.Type != h.topic {
		return h.next.Handle(r)
	}
	h.obs.log.Infof("%s support.", h.topic.Label())
	return h.obs.notify(Outcome{Handler: h.name, Request: r, Handled: true})
}

func (h *TopicHandler) setNext(next Handler) { h.next = next }

// NoSupportHandler terminates every chain and accepts any request.
type NoSupportHandler struct {
	obs observers
}

// NoSupportName is the Outcome.Handler reported by NoSupportHandler.
const NoSupportName = "no_support"

// NewNoSupportHandler returns a terminal handler.
func NewNoSupportHandler(opts ...Option) *NoSupportHandler {
	return &NoSupportHandler{obs: newObservers(opts)}
}

func (*NoSupportHandler) Name() string { return NoSupportName }

func (h *NoSupportHandler) Handle(r Request) Outcome {
	h.obs.log.Infof("No support handler.")
	h.obs.log.Debugw("unhandled request", map[string]any{"type": r.Type.String(), "query": r.Query})
	return h.obs.notify(Outcome{Handler: NoSupportName, Request: r})
}

// setNext is a no-op: the terminal handler has no successor.
func (*NoSupportHandler) setNext(Handler) {}
