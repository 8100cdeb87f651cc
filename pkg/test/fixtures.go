package test

import (
	"checkrun/pkg/model"
)

// SampleSuite returns a basic Suite for testing.
func SampleSuite() *model.Suite {
	return &model.Suite{
		Requirements: []model.ToolRequirement{
			{Tool: "black", Version: ">=23.0"},
		},
		Syncs: []model.SyncState{
			{Name: "requirements", Path: "requirements.txt", Source: "requirements.lock"},
		},
		Checks: []model.CheckState{
			{
				Name:    "format",
				Message: "Running Black Check...",
				Command: "black --check .",
			},
			{
				Name:    "tests",
				Message: "Running Tests...",
				Command: "pytest --cov=myproject --cov-report=xml",
				Env: []model.EnvVar{
					{Name: "PYTHONPATH", Append: "."},
				},
				Coverage: &model.CoverageState{Report: "coverage.xml", Min: 80},
			},
		},
	}
}

// SampleSuiteYAML returns a sample YAML suite string.
func SampleSuiteYAML() string {
	return `requirements:
  - tool: black
    version: ">=23.0"
syncs:
  - name: requirements
    path: requirements.txt
    source: requirements.lock
checks:
  - name: format
    message: Running Black Check...
    command: black --check .
  - name: tests
    message: Running Tests...
    command: pytest --cov=myproject --cov-report=xml
    env:
      - name: PYTHONPATH
        append: "."
    coverage:
      report: coverage.xml
      min: 80
`
}

// CoberturaXML returns a minimal Cobertura report with the given line rate.
func CoberturaXML(lineRate string) string {
	return `<?xml version="1.0" ?>
<coverage version="7.4.1" timestamp="1706800000000" lines-valid="120" lines-covered="101" line-rate="` + lineRate + `" branches-valid="0" branches-covered="0" branch-rate="0" complexity="0">
  <sources>
    <source>/app</source>
  </sources>
  <packages/>
</coverage>
`
}

// CoverageJSON returns a minimal coverage.py JSON report with the given
// totals.percent_covered value.
func CoverageJSON(percent string) string {
	return `{"meta": {"version": "7.4.1"}, "files": {}, "totals": {"covered_lines": 101, "num_statements": 120, "percent_covered": ` + percent + `}}`
}
