package checks

import (
	"fmt"

	"checkrun/pkg/coverage"
	"checkrun/pkg/log"
	"checkrun/pkg/model"
	"checkrun/pkg/runner"
	"checkrun/pkg/system"
)

// CommandCheck invokes an external tool in check-only mode. The check
// passes iff the command exits zero; a non-zero exit becomes the check's
// exit status verbatim.
type CommandCheck struct {
	CheckName string
	Message   string
	Command   string
	Env       []model.EnvVar
	Coverage  *model.CoverageState
}

func (c *CommandCheck) Name() string {
	return c.CheckName
}

func (c *CommandCheck) Description() string {
	if c.Message != "" {
		return c.Message
	}
	return fmt.Sprintf("Running %s...", c.CheckName)
}

func (c *CommandCheck) ExecutionDetails() []string {
	details := []string{fmt.Sprintf("run: %s", c.Command)}
	for _, env := range c.Env {
		if env.Value != "" {
			details = append(details, fmt.Sprintf("env: %s=%s", env.Name, env.Value))
		} else {
			details = append(details, fmt.Sprintf("env: append '%s' to %s", env.Append, env.Name))
		}
	}
	if c.Coverage != nil {
		if c.Coverage.Min > 0 {
			details = append(details, fmt.Sprintf("coverage: %s must report at least %.1f%%", c.Coverage.Report, c.Coverage.Min))
		} else {
			details = append(details, fmt.Sprintf("coverage: report %s", c.Coverage.Report))
		}
	}
	return details
}

func (c *CommandCheck) Run(r system.CommandRunner, logger log.Logger) error {
	env, err := system.BuildEnv(c.Env)
	if err != nil {
		return &CheckError{Check: c.CheckName, Status: 1, Err: err}
	}

	logger.Debug("Executing command", "check", c.CheckName, "command", c.Command)
	if _, err := r.Run(c.Command, env); err != nil {
		return &CheckError{Check: c.CheckName, Status: runner.ExitStatus(err), Err: err}
	}

	if c.Coverage != nil {
		return c.gateCoverage(logger)
	}
	return nil
}

// gateCoverage inspects the report the test command emitted. When no
// minimum is configured the report is informational only: the external
// runner owns the file, so a missing or unreadable report is not fatal.
func (c *CommandCheck) gateCoverage(logger log.Logger) error {
	report, err := coverage.Read(system.AppFs, c.Coverage.Report)
	if err != nil {
		if c.Coverage.Min <= 0 {
			logger.Warn("Could not read coverage report", "check", c.CheckName, "path", c.Coverage.Report, "error", err)
			return nil
		}
		return &CheckError{Check: c.CheckName, Status: 1, Err: err}
	}

	logger.Info("Coverage", "check", c.CheckName, "report", c.Coverage.Report, "percent", fmt.Sprintf("%.1f", report.Percent))

	if c.Coverage.Min > 0 && !report.Meets(c.Coverage.Min) {
		return &CheckError{
			Check:  c.CheckName,
			Status: 1,
			Err:    fmt.Errorf("coverage %.1f%% is below the required minimum %.1f%%", report.Percent, c.Coverage.Min),
		}
	}
	return nil
}
