package test

import (
	"bytes"
	"fmt"
	"log/slog"

	"checkrun/pkg/log"
)

// MockCommandRunner is a shared mock implementation of runner.CommandRunner for testing.
// It tracks executed commands and their environments and allows setting up
// responses and errors.
type MockCommandRunner struct {
	Commands  []string            // Track executed commands in order
	Envs      map[string][]string // Environment each command ran with (nil means inherited)
	Responses map[string][]byte   // Response by command
	Errors    map[string]error    // Error by command
}

// NewMockCommandRunner creates a new MockCommandRunner with initialized maps.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Commands:  []string{},
		Envs:      make(map[string][]string),
		Responses: make(map[string][]byte),
		Errors:    make(map[string]error),
	}
}

// Run simulates running a command and returns the configured response or error.
func (r *MockCommandRunner) Run(command string, env []string) ([]byte, error) {
	r.Commands = append(r.Commands, command)
	r.Envs[command] = env

	if err, ok := r.Errors[command]; ok {
		return nil, err
	}
	if resp, ok := r.Responses[command]; ok {
		return resp, nil
	}
	return nil, nil
}

// SetResponse configures the output for a specific command.
func (r *MockCommandRunner) SetResponse(command string, response []byte) {
	r.Responses[command] = response
}

// SetError configures an error for a specific command.
func (r *MockCommandRunner) SetError(command string, err error) {
	r.Errors[command] = err
}

// Reset clears all tracked commands and configurations.
func (r *MockCommandRunner) Reset() {
	r.Commands = []string{}
	r.Envs = make(map[string][]string)
	r.Responses = make(map[string][]byte)
	r.Errors = make(map[string]error)
}

// MockLogger is a shared mock implementation of Logger for testing.
// It captures logged messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

// NewMockLogger creates a new MockLogger with the specified level.
func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{
		Messages: []string{},
		Level:    level,
	}
}

// Debug captures debug messages.
func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.captureMessage("DEBUG", msg, args...)
	}
}

// Info captures info messages.
func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.captureMessage("INFO", msg, args...)
	}
}

// Warn captures warn messages.
func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.captureMessage("WARN", msg, args...)
	}
}

// Error captures error messages.
func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.captureMessage("ERROR", msg, args...)
	}
}

func (l *MockLogger) captureMessage(level, msg string, args ...any) {
	// Simple string formatting for captured messages
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			buf.WriteString(" ")
			buf.WriteString(fmt.Sprintf("%v", args[i]))
			buf.WriteString("=")
			buf.WriteString(fmt.Sprintf("%v", args[i+1]))
		}
	}
	l.Messages = append(l.Messages, buf.String())
}

// Reset clears all captured messages.
func (l *MockLogger) Reset() {
	l.Messages = []string{}
}

// HasMessage checks if any captured message contains the given substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if bytes.Contains([]byte(msg), []byte(substring)) {
			return true
		}
	}
	return false
}

// SlogLogger creates a real slog logger for testing (alternative to mock).
func SlogLogger(level slog.Level) log.Logger {
	buf := &bytes.Buffer{}
	return log.NewSlogLogger(level, buf)
}
