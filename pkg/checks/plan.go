package checks

import (
	"checkrun/pkg/model"
)

// BuildPlan converts a suite into the ordered list of checks to execute:
// tool requirements first, then sync checks, then command checks, each
// group in declared order.
func BuildPlan(suite *model.Suite) []Check {
	var plan []Check

	for _, req := range suite.Requirements {
		plan = append(plan, &ToolCheck{
			Tool:           req.Tool,
			Constraint:     req.Version,
			VersionCommand: req.VersionCommand,
		})
	}

	for _, sync := range suite.Syncs {
		plan = append(plan, &SyncCheck{
			SyncName: sync.Name,
			Path:     sync.Path,
			Source:   sync.Source,
		})
	}

	for _, check := range suite.Checks {
		plan = append(plan, &CommandCheck{
			CheckName: check.Name,
			Message:   check.Message,
			Command:   check.Command,
			Env:       check.Env,
			Coverage:  check.Coverage,
		})
	}

	return plan
}
