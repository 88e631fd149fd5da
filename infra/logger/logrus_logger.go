package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements Logger on top of sirupsen/logrus with JSON output.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger returns a LogrusLogger writing to stdout.
func NewLogrusLogger(component string) *LogrusLogger {
	return NewLogrusLoggerWithWriter(component, os.Stdout)
}

// NewLogrusLoggerWithWriter returns a LogrusLogger writing JSON to w.
func NewLogrusLoggerWithWriter(component string, w io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	return &LogrusLogger{entry: l.WithField("component", component)}
}

// SetLevel changes the minimum level emitted by the logger.
func (l *LogrusLogger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

func (l *LogrusLogger) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *LogrusLogger) Debugw(msg string, fields map[string]any) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusLogger) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *LogrusLogger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}
