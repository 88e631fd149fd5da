package document

import (
	"fmt"
	"strings"
)

// Type identifies a concrete Document implementation.
type Type int

const (
	TypeReport Type = iota
	TypeSpreadsheet
	TypePresentation
)

// Types lists every Type in declaration order.
var Types = []Type{TypeReport, TypeSpreadsheet, TypePresentation}

// String returns the registry name of the type.
func (t Type) String() string {
	switch t {
	case TypeReport:
		return "report"
	case TypeSpreadsheet:
		return "spreadsheet"
	case TypePresentation:
		return "presentation"
	default:
		return "unknown"
	}
}

// ParseType converts a registry name back into a Type.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown document type %q", s)
}
