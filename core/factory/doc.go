// Package factory provides a small generic registry used to instantiate
// pattern objects and sinks by name. Entries are defined by a type string and
// a map of raw settings. Factories decode the settings into typed structs and
// return the concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[document.Document]()
//	reg.Register("report", func(conf map[string]any) (document.Document, error) {
//	    var c struct{ Name string `json:"name"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return document.NewReport(c.Name, log), nil
//	})
//	d, err := reg.Create(factory.ModuleConfig{Type: "report", Conf: map[string]any{"name": "q3"}})
package factory
