/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"fmt"

	"github.com/acronis/go-limitrate/gate"
)

// RateLimitedLogger represents a logger that writes the same message at most once per interval
// of the underlying gate. Messages are identified by their level and text (format string for *f methods),
// fields are not taken into account. Suppressed messages are dropped.
//
// Loggers derived with With and WithLevel share the gate with the parent,
// so the same message is rate-limited across all of them.
type RateLimitedLogger struct {
	delegate FieldLogger
	gate     *gate.KeyedGate[string]
}

// NewRateLimitedLogger returns a new RateLimitedLogger instance.
func NewRateLimitedLogger(delegate FieldLogger, messagesGate *gate.KeyedGate[string]) FieldLogger {
	return &RateLimitedLogger{delegate, messagesGate}
}

func (l *RateLimitedLogger) allow(level Level, text string) bool {
	return l.gate.Allow(string(level) + "|" + text)
}

// With returns a new logger with the given additional fields.
func (l *RateLimitedLogger) With(fs ...Field) FieldLogger {
	return &RateLimitedLogger{l.delegate.With(fs...), l.gate}
}

// Debug logs a message at "debug" level if it was not logged within the interval.
func (l *RateLimitedLogger) Debug(text string, fs ...Field) {
	l.AtLevel(LevelDebug, func(logFunc LogFunc) { logFunc(text, fs...) })
}

// Info logs a message at "info" level if it was not logged within the interval.
func (l *RateLimitedLogger) Info(text string, fs ...Field) {
	l.AtLevel(LevelInfo, func(logFunc LogFunc) { logFunc(text, fs...) })
}

// Warn logs a message at "warn" level if it was not logged within the interval.
func (l *RateLimitedLogger) Warn(text string, fs ...Field) {
	l.AtLevel(LevelWarn, func(logFunc LogFunc) { logFunc(text, fs...) })
}

// Error logs a message at "error" level if it was not logged within the interval.
func (l *RateLimitedLogger) Error(text string, fs ...Field) {
	l.AtLevel(LevelError, func(logFunc LogFunc) { logFunc(text, fs...) })
}

// Debugf logs a formatted message at "debug" level if the format was not used within the interval.
func (l *RateLimitedLogger) Debugf(format string, args ...interface{}) {
	l.logfAtLevel(LevelDebug, format, args...)
}

// Infof logs a formatted message at "info" level if the format was not used within the interval.
func (l *RateLimitedLogger) Infof(format string, args ...interface{}) {
	l.logfAtLevel(LevelInfo, format, args...)
}

// Warnf logs a formatted message at "warn" level if the format was not used within the interval.
func (l *RateLimitedLogger) Warnf(format string, args ...interface{}) {
	l.logfAtLevel(LevelWarn, format, args...)
}

// Errorf logs a formatted message at "error" level if the format was not used within the interval.
func (l *RateLimitedLogger) Errorf(format string, args ...interface{}) {
	l.logfAtLevel(LevelError, format, args...)
}

func (l *RateLimitedLogger) logfAtLevel(level Level, format string, args ...interface{}) {
	l.delegate.AtLevel(level, func(logFunc LogFunc) {
		if l.allow(level, format) {
			logFunc(fmt.Sprintf(format, args...))
		}
	})
}

// AtLevel calls the given fn if logging a message at the specified level is enabled,
// passing a LogFunc that drops messages logged within the interval.
// Messages below the enabled level don't affect the rate limiting state.
func (l *RateLimitedLogger) AtLevel(level Level, fn func(logFunc LogFunc)) {
	l.delegate.AtLevel(level, func(logFunc LogFunc) {
		fn(func(msg string, fs ...Field) {
			if l.allow(level, msg) {
				logFunc(msg, fs...)
			}
		})
	})
}

// WithLevel returns a new logger with additional level check.
func (l *RateLimitedLogger) WithLevel(level Level) FieldLogger {
	return &RateLimitedLogger{l.delegate.WithLevel(level), l.gate}
}
