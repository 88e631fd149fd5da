package config

import (
	"fmt"

	"github.com/kilianp07/designpatterns/core/gui"
	"github.com/kilianp07/designpatterns/core/support"
)

// GUIConfig selects the widget family produced by the abstract factory.
type GUIConfig struct {
	Family string `json:"family"`
}

func (c *GUIConfig) SetDefaults() {
	if c.Family == "" {
		c.Family = gui.Windows.String()
	}
}

func (c GUIConfig) Validate() error {
	_, err := gui.ParseOS(c.Family)
	return err
}

// OS returns the configured family. Call after Validate.
func (c GUIConfig) OS() gui.OS {
	os, _ := gui.ParseOS(c.Family)
	return os
}

// SupportConfig lists the request types handled by the support chain, in
// order. The terminal handler is always appended.
type SupportConfig struct {
	Chain []string `json:"chain"`
}

func (c *SupportConfig) SetDefaults() {
	if len(c.Chain) == 0 {
		for _, t := range []support.RequestType{support.Billing, support.Product, support.Technical, support.General} {
			c.Chain = append(c.Chain, t.String())
		}
	}
}

func (c SupportConfig) Validate() error {
	for i, name := range c.Chain {
		if _, err := support.ParseRequestType(name); err != nil {
			return fmt.Errorf("chain[%d]: %w", i, err)
		}
	}
	return nil
}

// RequestTypes returns the parsed chain. Call after Validate.
func (c SupportConfig) RequestTypes() []support.RequestType {
	types := make([]support.RequestType, 0, len(c.Chain))
	for _, name := range c.Chain {
		t, err := support.ParseRequestType(name)
		if err == nil {
			types = append(types, t)
		}
	}
	return types
}
