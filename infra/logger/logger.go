package logger

import (
	"fmt"
	"strings"

	corelogger "github.com/kilianp07/designpatterns/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// Backend names accepted by FromConfig.
const (
	BackendZerolog = "zerolog"
	BackendLogrus  = "logrus"
)

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. The environment is detected via
// the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// FromConfig builds a Logger for component using the named backend and level.
// An empty backend selects zerolog and an empty level selects info.
func FromConfig(component, backend, level string) (Logger, error) {
	if level == "" {
		level = "info"
	}
	switch strings.ToLower(backend) {
	case "", BackendZerolog:
		l := NewZerologLogger(component).(*ZerologLogger)
		if err := l.SetLevel(level); err != nil {
			return nil, err
		}
		return l, nil
	case BackendLogrus:
		l := NewLogrusLogger(component)
		if err := l.SetLevel(level); err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown logging backend %s", backend)
	}
}
