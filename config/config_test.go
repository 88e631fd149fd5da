package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/designpatterns/core/gui"
	"github.com/kilianp07/designpatterns/core/support"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `logging:
  backend: "logrus"
  level: "debug"
metrics:
  sinks:
    - type: "nop"
gui:
  family: "macos"
documents:
  - type: "report"
    conf:
      name: "q3"
support:
  chain: ["technical", "billing"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.backend", cfg.Logging.Backend, "logrus"},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"gui.family", cfg.GUI.OS(), gui.MacOS},
		{"documents", len(cfg.Documents), 1},
		{"documents.name", cfg.Documents[0].Conf["name"], "q3"},
		{"support.chain", cfg.Support.RequestTypes(), []support.RequestType{support.Technical, support.Billing}},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_JSONDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zerolog", cfg.Logging.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, gui.Windows, cfg.GUI.OS())
	assert.Len(t, cfg.Documents, 3)
	assert.Equal(t, []support.RequestType{support.Billing, support.Product, support.Technical, support.General}, cfg.Support.RequestTypes())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", "gui:\n  family: windows\n")
	t.Setenv("K_GUI__FAMILY", "macos")
	t.Setenv("K_METRICS__LISTEN_ADDR", ":9100")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, gui.MacOS, cfg.GUI.OS())
	assert.Equal(t, ":9100", cfg.Metrics.ListenAddr)
}

func TestLoad_BackendCaseInsensitive(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", "logging:\n  backend: Logrus\n  level: WARN\n"))
	require.NoError(t, err)
	assert.Equal(t, "Logrus", cfg.Logging.Backend)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"backend": "logging:\n  backend: syslog\n",
		"level":   "logging:\n  level: loud\n",
		"family":  "gui:\n  family: beos\n",
		"chain":   "support:\n  chain: [refund]\n",
		"doc":     "documents:\n  - conf: {name: x}\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", data))
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(writeFile(t, "config.toml", ""))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}
