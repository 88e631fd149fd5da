// Package gui implements the abstract factory pattern. A Factory produces a
// consistent family of widgets (input, button, checkbox) for one operating
// system look and feel; switching the OS passed to NewFactory switches all
// three concrete widget types at once.
package gui

import (
	"fmt"
	"strings"
)

// OS identifies a widget family.
type OS int

const (
	Windows OS = iota
	MacOS
)

// Families lists every OS in declaration order.
var Families = []OS{Windows, MacOS}

// String returns the configuration name of the family.
func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// ParseOS converts a configuration name back into an OS.
func ParseOS(s string) (OS, error) {
	for _, o := range Families {
		if strings.EqualFold(s, o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown gui family %q", s)
}

// Widget is the capability shared by every produced control.
type Widget interface {
	Render()
	Family() OS
}

// Input is a text field.
type Input interface {
	Widget
	isInput()
}

// Button is a clickable control.
type Button interface {
	Widget
	isButton()
}

// Checkbox is a two-state control.
type Checkbox interface {
	Widget
	isCheckbox()
}

// Factory creates a consistent family of widgets.
type Factory interface {
	Family() OS
	CreateInput() Input
	CreateButton() Button
	CreateCheckbox() Checkbox
}
