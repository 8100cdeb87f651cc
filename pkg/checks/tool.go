package checks

import (
	"fmt"
	"regexp"
	"strings"

	"checkrun/pkg/log"
	"checkrun/pkg/runner"
	"checkrun/pkg/system"

	"github.com/Masterminds/semver/v3"
)

// versionPattern matches the first dotted version number in a tool's
// --version output, e.g. "black, 24.3.0 (compiled: yes)".
var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ToolCheck gates the run on an external tool being invocable and,
// optionally, satisfying a semver constraint.
type ToolCheck struct {
	Tool           string
	Constraint     string
	VersionCommand string
}

func (c *ToolCheck) Name() string {
	return fmt.Sprintf("require-%s", c.Tool)
}

func (c *ToolCheck) Description() string {
	if c.Constraint != "" {
		return fmt.Sprintf("Checking for %s %s...", c.Tool, c.Constraint)
	}
	return fmt.Sprintf("Checking for %s...", c.Tool)
}

func (c *ToolCheck) ExecutionDetails() []string {
	details := []string{fmt.Sprintf("probe: %s", c.probeCommand())}
	if c.Constraint != "" {
		details = append(details, fmt.Sprintf("version must satisfy %s", c.Constraint))
	}
	return details
}

func (c *ToolCheck) probeCommand() string {
	if c.VersionCommand != "" {
		return c.VersionCommand
	}
	return c.Tool + " --version"
}

func (c *ToolCheck) Run(r system.CommandRunner, logger log.Logger) error {
	output, err := r.Run(c.probeCommand(), nil)
	if err != nil {
		return &CheckError{
			Check:  c.Name(),
			Status: runner.ExitStatus(err),
			Err:    fmt.Errorf("tool '%s' is not available: %w", c.Tool, err),
		}
	}

	if c.Constraint == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Constraint)
	if err != nil {
		return &CheckError{Check: c.Name(), Status: 1, Err: fmt.Errorf("invalid version constraint '%s': %w", c.Constraint, err)}
	}

	version, err := parseToolVersion(string(output))
	if err != nil {
		return &CheckError{Check: c.Name(), Status: 1, Err: fmt.Errorf("could not determine %s version: %w", c.Tool, err)}
	}

	logger.Debug("Tool version", "tool", c.Tool, "version", version.String())

	if !constraint.Check(version) {
		return &CheckError{
			Check:  c.Name(),
			Status: 1,
			Err:    fmt.Errorf("%s version %s does not satisfy %s", c.Tool, version, c.Constraint),
		}
	}
	return nil
}

func parseToolVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version number in output %q", strings.TrimSpace(output))
	}
	return semver.NewVersion(match)
}
