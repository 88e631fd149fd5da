package support

import (
	"fmt"
	"strings"
)

// RequestType categorises a support request.
type RequestType int

const (
	Billing RequestType = iota
	Product
	Technical
	General
	Complaint
)

// RequestTypes lists every RequestType in declaration order.
var RequestTypes = []RequestType{Billing, Product, Technical, General, Complaint}

func (t RequestType) String() string {
	switch t {
	case Billing:
		return "BILLING"
	case Product:
		return "PRODUCT"
	case Technical:
		return "TECHNICAL"
	case General:
		return "GENERAL"
	case Complaint:
		return "COMPLAINT"
	default:
		return "UNKNOWN"
	}
}

// ParseRequestType accepts the names returned by String in any case.
func ParseRequestType(s string) (RequestType, error) {
	for _, t := range RequestTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown request type %q", s)
}

// Request is an immutable support query.
type Request struct {
	Type  RequestType
	Query string
}

// NewRequest returns a Request of type t.
func NewRequest(t RequestType, query string) Request {
	return Request{Type: t, Query: query}
}

// Outcome describes which handler serviced a request.
type Outcome struct {
	Handler string
	Request Request
	// Handled is false when the request reached the terminal handler.
	Handled bool
}

// Label returns the title-case name used in log messages.
func (t RequestType) Label() string {
	switch t {
	case Billing:
		return "Billing"
	case Product:
		return "Product"
	case Technical:
		return "Technical"
	case General:
		return "General"
	case Complaint:
		return "Complaint"
	default:
		return "Unknown"
	}
}
