package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/designpatterns/core/factory"
	"github.com/kilianp07/designpatterns/core/metrics"
)

type Config struct {
	Logging   LoggingConfig          `json:"logging"`
	Metrics   metrics.Config         `json:"metrics"`
	GUI       GUIConfig              `json:"gui"`
	Documents []factory.ModuleConfig `json:"documents"`
	Support   SupportConfig          `json:"support"`
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Logging.SetDefaults()
	c.GUI.SetDefaults()
	c.Support.SetDefaults()
	if len(c.Documents) == 0 {
		c.Documents = []factory.ModuleConfig{{Type: "report"}, {Type: "spreadsheet"}, {Type: "presentation"}}
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.GUI.Validate(); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	if err := c.Support.Validate(); err != nil {
		return fmt.Errorf("support: %w", err)
	}
	for i, d := range c.Documents {
		if d.Type == "" {
			return fmt.Errorf("documents[%d]: type is required", i)
		}
	}
	return nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
