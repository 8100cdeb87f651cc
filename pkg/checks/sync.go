package checks

import (
	"bytes"
	"fmt"

	"checkrun/pkg/log"
	"checkrun/pkg/system"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
)

// SyncCheck asserts that a generated file matches its source, failing
// with a rendered diff when the two have drifted apart.
type SyncCheck struct {
	SyncName string
	Path     string
	Source   string
}

func (c *SyncCheck) Name() string {
	return c.SyncName
}

func (c *SyncCheck) Description() string {
	return fmt.Sprintf("Checking %s is in sync...", c.Path)
}

func (c *SyncCheck) ExecutionDetails() []string {
	return []string{fmt.Sprintf("compare: %s against %s", c.Path, c.Source)}
}

func (c *SyncCheck) Run(r system.CommandRunner, logger log.Logger) error {
	source, err := afero.ReadFile(system.AppFs, c.Source)
	if err != nil {
		return &CheckError{Check: c.SyncName, Status: 1, Err: fmt.Errorf("failed to read source %s: %w", c.Source, err)}
	}

	actual, err := afero.ReadFile(system.AppFs, c.Path)
	if err != nil {
		return &CheckError{Check: c.SyncName, Status: 1, Err: fmt.Errorf("failed to read %s: %w", c.Path, err)}
	}

	if bytes.Equal(source, actual) {
		logger.Debug("File is in sync", "path", c.Path, "source", c.Source)
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(actual), string(source), false)
	return &CheckError{
		Check:  c.SyncName,
		Status: 1,
		Err: fmt.Errorf("%s is out of sync with %s:\n--- diff ---\n%s\n--- end diff ---",
			c.Path, c.Source, dmp.DiffPrettyText(diffs)),
	}
}
