//go:build integration
// +build integration

package integration

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"checkrun/pkg/checks"
	"checkrun/pkg/config"
	"checkrun/pkg/log"
	"checkrun/pkg/runner"
	"checkrun/pkg/system"
)

func liveRunner(out *bytes.Buffer) *system.LiveCommandRunner {
	return &system.LiveCommandRunner{Stdout: out, Stderr: out}
}

func TestPipelineAgainstLiveShell(t *testing.T) {
	logger := log.NewSlogLogger(slog.LevelInfo, &bytes.Buffer{})
	tmpDir := t.TempDir()

	marker := filepath.Join(tmpDir, "marker")
	suite := `
checks:
  - name: passes
    command: "true"
  - name: fails
    command: "exit 4"
  - name: never
    command: "touch ` + marker + `"
`
	suitePath := filepath.Join(tmpDir, "checks.yaml")
	if err := os.WriteFile(suitePath, []byte(suite), 0644); err != nil {
		t.Fatalf("Failed to write suite: %v", err)
	}

	cfg, err := config.LoadConfig(suitePath, logger)
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	var out bytes.Buffer
	err = checks.RunPipeline(&out, checks.BuildPlan(cfg), liveRunner(&out), logger)
	if err == nil {
		t.Fatal("Expected the pipeline to fail")
	}
	if status := runner.ExitStatus(err); status != 4 {
		t.Fatalf("Expected exit status 4, got %d", status)
	}

	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Fatal("The check after the failure must not run")
	}
}

func TestPipelineEnvAugmentation(t *testing.T) {
	logger := log.NewSlogLogger(slog.LevelInfo, &bytes.Buffer{})
	tmpDir := t.TempDir()

	outFile := filepath.Join(tmpDir, "env.txt")
	suite := `
checks:
  - name: capture
    command: "printf '%s' \"$CHECKRUN_IT_PATH\" > ` + outFile + `"
    env:
      - name: CHECKRUN_IT_PATH
        append: "."
`
	suitePath := filepath.Join(tmpDir, "checks.yaml")
	if err := os.WriteFile(suitePath, []byte(suite), 0644); err != nil {
		t.Fatalf("Failed to write suite: %v", err)
	}

	cfg, err := config.LoadConfig(suitePath, logger)
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	var out bytes.Buffer
	if err := checks.RunPipeline(&out, checks.BuildPlan(cfg), liveRunner(&out), logger); err != nil {
		t.Fatalf("Pipeline failed: %v\n%s", err, out.String())
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	content, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Failed to read captured env: %v", err)
	}
	if !strings.HasSuffix(string(content), wd) {
		t.Fatalf("Expected CHECKRUN_IT_PATH to end with %s, got %q", wd, string(content))
	}
}

func TestPipelineStreamsCommandOutput(t *testing.T) {
	logger := log.NewSlogLogger(slog.LevelInfo, &bytes.Buffer{})
	tmpDir := t.TempDir()

	suite := `
checks:
  - name: noisy
    command: "echo tool output here"
`
	suitePath := filepath.Join(tmpDir, "checks.yaml")
	if err := os.WriteFile(suitePath, []byte(suite), 0644); err != nil {
		t.Fatalf("Failed to write suite: %v", err)
	}

	cfg, err := config.LoadConfig(suitePath, logger)
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	var out bytes.Buffer
	if err := checks.RunPipeline(&out, checks.BuildPlan(cfg), liveRunner(&out), logger); err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}
	if !strings.Contains(out.String(), "tool output here") {
		t.Fatalf("Expected the tool's output on the console, got %q", out.String())
	}
}
