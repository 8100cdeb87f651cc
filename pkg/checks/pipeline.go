package checks

import (
	"errors"
	"fmt"
	"io"

	"checkrun/pkg/log"
	"checkrun/pkg/output"
	"checkrun/pkg/system"
)

// RunPipeline executes the plan strictly in order, stopping at the first
// failure. Each check's description is written to out immediately before
// it runs. The returned error is the failing check's *CheckError; no
// later check is attempted.
func RunPipeline(out io.Writer, plan []Check, r system.CommandRunner, logger log.Logger) error {
	for _, check := range plan {
		fmt.Fprintln(out, check.Description())

		if err := check.Run(r, logger); err != nil {
			output.PrintFail(out, check.Name())
			var checkErr *CheckError
			if errors.As(err, &checkErr) {
				logger.Error("Check failed", "check", check.Name(), "status", checkErr.Status)
			}
			return err
		}

		output.PrintOK(out, check.Name())
	}
	return nil
}
