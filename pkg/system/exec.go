package system

import (
	"bytes"
	"io"
	"os"
	"os/exec"

	"checkrun/pkg/runner"
)

// CommandRunner defines an interface for running commands.
// This allows for mocking in tests.
// Re-exported from pkg/runner to maintain backward compatibility.
type CommandRunner = runner.CommandRunner

// LiveCommandRunner is an implementation of CommandRunner that runs commands
// on the live system. Output is streamed to Stdout/Stderr as it is produced
// and also captured for the caller.
type LiveCommandRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the given command through the shell and returns its combined output.
func (r *LiveCommandRunner) Run(command string, env []string) ([]byte, error) {
	cmd := exec.Command("sh", "-c", command)
	if env != nil {
		cmd.Env = env
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var buf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &buf)
	cmd.Stderr = io.MultiWriter(stderr, &buf)

	err := cmd.Run()
	return buf.Bytes(), err
}
