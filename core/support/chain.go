package support

// BuildChain links handlers in order and returns the head. A NoSupportHandler
// is appended unless the last handler already is one, and an empty list yields
// a lone NoSupportHandler. A NoSupportHandler placed before the end cuts the
// chain there since it accepts every request.
func BuildChain(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return NewNoSupportHandler()
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].setNext(handlers[i+1])
	}
	if th, ok := handlers[len(handlers)-1].(*TopicHandler); ok {
		th.setNext(&NoSupportHandler{obs: th.obs})
	}
	return handlers[0]
}

// DefaultChain returns billing -> product -> technical -> general -> terminal,
// with opts applied to every node.
func DefaultChain(opts ...Option) Handler {
	return ChainFor([]RequestType{Billing, Product, Technical, General}, opts...)
}

// ChainFor builds a chain with the standard handler of each type, in order.
func ChainFor(types []RequestType, opts ...Option) Handler {
	handlers := make([]Handler, 0, len(types)+1)
	for _, t := range types {
		handlers = append(handlers, NewHandlerFor(t, opts...))
	}
	if len(handlers) == 0 {
		return NewNoSupportHandler(opts...)
	}
	return BuildChain(handlers...)
}

// Walk calls fn for every node from head to the terminal handler.
func Walk(head Handler, fn func(Handler)) {
	for h := head; h != nil; {
		fn(h)
		th, ok := h.(*TopicHandler)
		if !ok {
			return
		}
		h = th.next
	}
}
