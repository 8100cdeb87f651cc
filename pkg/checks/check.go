package checks

import (
	"fmt"

	"checkrun/pkg/log"
	"checkrun/pkg/system"
)

// Check represents a single, discrete verification of the project.
type Check interface {
	// Name returns the check's identifier.
	Name() string
	// Description returns the console line printed before the check runs.
	Description() string
	// Run executes the check. A non-nil error is always a *CheckError.
	Run(runner system.CommandRunner, logger log.Logger) error
	// ExecutionDetails returns a slice of strings describing the low-level operations.
	ExecutionDetails() []string
}

// CheckError reports a failed check together with the exit status the
// whole run must surface.
type CheckError struct {
	Check  string
	Status int
	Err    error
}

func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("check '%s' failed: %v", e.Check, e.Err)
	}
	return fmt.Sprintf("check '%s' failed with status %d", e.Check, e.Status)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// ExitCode makes CheckError satisfy runner.ExitCoder.
func (e *CheckError) ExitCode() int {
	return e.Status
}
