// Package runner defines interfaces for command execution.
// This package exists to break import cycles between testing and system packages.
package runner

import (
	"errors"
	"fmt"
)

// CommandRunner defines an interface for running commands.
// This allows for mocking in tests.
type CommandRunner interface {
	// Run executes the command through the shell with the given
	// environment. A nil env means the inherited process environment.
	// The returned bytes are the command's combined output.
	Run(command string, env []string) ([]byte, error)
}

// ExitCoder is implemented by errors that carry a process exit status.
// *exec.ExitError satisfies it, as does CommandError for mocks.
type ExitCoder interface {
	ExitCode() int
}

// CommandError reports a command that exited non-zero.
type CommandError struct {
	Command string
	Code    int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

func (e *CommandError) ExitCode() int {
	return e.Code
}

// ExitStatus maps a Run error to the exit status of the failed command.
// A nil error is status 0. Errors that do not carry a usable exit status
// (command not started, killed by signal) map to 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		if code := ec.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
