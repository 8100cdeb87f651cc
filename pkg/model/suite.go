package model

import (
	"fmt"
	"strings"
)

// EnvPathVar is the module-search-path variable augmented before the
// default suite's test check runs.
const EnvPathVar = "PYTHONPATH"

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("suite validation failed:\n")
	for _, e := range es {
		sb.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
	}
	return sb.String()
}

type Validator interface {
	Validate() ValidationErrors
}

// Suite is the declarative description of a check pipeline. Order is
// semantic: requirements gate the run, then syncs, then checks, each in
// declared order.
type Suite struct {
	Includes     []string          `yaml:"includes,omitempty"` // List of suite files to include and merge
	Requirements []ToolRequirement `yaml:"requirements,omitempty"`
	Syncs        []SyncState       `yaml:"syncs,omitempty"`
	Checks       []CheckState      `yaml:"checks"`
}

// ToolRequirement gates the run on an external tool being present and,
// optionally, satisfying a semver constraint.
type ToolRequirement struct {
	Tool    string `yaml:"tool"`
	Version string `yaml:"version,omitempty"`
	// VersionCommand overrides the default "<tool> --version" probe.
	VersionCommand string `yaml:"version-command,omitempty"`
}

// CheckState describes one external command invoked in check-only mode.
type CheckState struct {
	Name     string         `yaml:"name"`
	Message  string         `yaml:"message,omitempty"` // console line printed before the command runs
	Command  string         `yaml:"command"`
	Env      []EnvVar       `yaml:"env,omitempty"`
	Coverage *CoverageState `yaml:"coverage,omitempty"`
}

// EnvVar augments the inherited environment for a single check.
// Value replaces the variable; Append extends a path-list variable with
// one entry (relative entries are resolved against the working directory).
type EnvVar struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value,omitempty"`
	Append string `yaml:"append,omitempty"`
}

// CoverageState gates a check on the coverage report its command emitted.
type CoverageState struct {
	Report string  `yaml:"report"`
	Min    float64 `yaml:"min,omitempty"`
}

// SyncState asserts that a generated file is in sync with its source.
type SyncState struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Source string `yaml:"source"`
}

// DefaultSuite returns the built-in pipeline used when no suite file is
// present: a formatting check, an import-order check, and a test run
// with coverage over covTarget.
func DefaultSuite(covTarget string) *Suite {
	return &Suite{
		Checks: []CheckState{
			{
				Name:    "format",
				Message: "Running Black Check...",
				Command: "black --check .",
			},
			{
				Name:    "imports",
				Message: "Running Isort Check...",
				Command: "isort --check-only .",
			},
			{
				Name:    "tests",
				Message: "Running Tests...",
				Command: fmt.Sprintf("pytest --cov=%s --cov-report=xml", covTarget),
				Env: []EnvVar{
					{Name: EnvPathVar, Append: "."},
				},
				Coverage: &CoverageState{Report: "coverage.xml"},
			},
		},
	}
}

func (s *Suite) Validate() ValidationErrors {
	var errs ValidationErrors

	for i, include := range s.Includes {
		if strings.TrimSpace(include) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("includes[%d]", i), Message: "include path cannot be empty"})
		}
	}

	for i, req := range s.Requirements {
		if strings.TrimSpace(req.Tool) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("requirements[%d].tool", i), Message: "tool name cannot be empty"})
		}
		if !isValidName(req.Tool) {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("requirements[%d].tool", i), Message: "tool name contains invalid characters (only alphanumeric, hyphens, dots, and underscores allowed)"})
		}
	}

	seen := make(map[string]bool)
	for i, check := range s.Checks {
		if strings.TrimSpace(check.Name) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].name", i), Message: "check name cannot be empty"})
		} else if seen[check.Name] {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].name", i), Message: fmt.Sprintf("duplicate check name '%s'", check.Name)})
		}
		seen[check.Name] = true
		if !isValidName(check.Name) {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].name", i), Message: "check name contains invalid characters (only alphanumeric, hyphens, dots, and underscores allowed)"})
		}
		if strings.TrimSpace(check.Command) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].command", i), Message: "command cannot be empty"})
		}
		for j, env := range check.Env {
			if strings.TrimSpace(env.Name) == "" {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].env[%d].name", i, j), Message: "variable name cannot be empty"})
			}
			if env.Value != "" && env.Append != "" {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].env[%d]", i, j), Message: "value and append are mutually exclusive"})
			}
			if env.Value == "" && env.Append == "" {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].env[%d]", i, j), Message: "either value or append must be set"})
			}
		}
		if check.Coverage != nil {
			if strings.TrimSpace(check.Coverage.Report) == "" {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].coverage.report", i), Message: "report path cannot be empty"})
			}
			if check.Coverage.Min < 0 || check.Coverage.Min > 100 {
				errs = append(errs, ValidationError{Field: fmt.Sprintf("checks[%d].coverage.min", i), Message: "minimum coverage must be between 0 and 100"})
			}
		}
	}

	for i, sync := range s.Syncs {
		if strings.TrimSpace(sync.Name) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("syncs[%d].name", i), Message: "sync name cannot be empty"})
		}
		if !isValidName(sync.Name) {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("syncs[%d].name", i), Message: "sync name contains invalid characters (only alphanumeric, hyphens, dots, and underscores allowed)"})
		}
		if strings.TrimSpace(sync.Path) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("syncs[%d].path", i), Message: "path cannot be empty"})
		}
		if strings.TrimSpace(sync.Source) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("syncs[%d].source", i), Message: "source cannot be empty"})
		}
		if strings.Contains(sync.Path, "..") || strings.Contains(sync.Source, "..") {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("syncs[%d]", i), Message: "paths cannot contain '..'"})
		}
	}

	return errs
}

func isValidName(name string) bool {
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '.' || r == '_') {
			return false
		}
	}
	return true
}
