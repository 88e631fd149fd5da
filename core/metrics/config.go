package metrics

import "github.com/kilianp07/designpatterns/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
	// ListenAddr exposes Prometheus metrics over HTTP when set, e.g. ":2112".
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
}
