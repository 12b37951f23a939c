package ado

import (
	"github.com/sirupsen/logrus"
)

// NamedLogger is implemented by loggers that can derive a child logger for a
// component.
type NamedLogger interface {
	Logger
	Named(component string) Logger
}

// ChildLogger returns a child of logger for component when supported, and
// logger itself otherwise.
func ChildLogger(logger Logger, component string) Logger {
	if logger == nil {
		return NopLogger{}
	}

	if named, ok := logger.(NamedLogger); ok {
		return named.Named(component)
	}

	return logger
}

// LogrusLogger adapts a logrus entry to Logger.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a logger writing through entry. A nil entry uses the
// standard logrus logger.
func NewLogrusLogger(entry *logrus.Entry) *LogrusLogger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}

	return &LogrusLogger{entry: entry.WithField("logger", "ado")}
}

// Named returns a child logger tagged with component.
func (l *LogrusLogger) Named(component string) Logger {
	parent, _ := l.entry.Data["logger"].(string)
	if parent == "" {
		parent = "ado"
	}

	return &LogrusLogger{entry: l.entry.WithField("logger", parent+"."+component)}
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
