package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"checkrun/pkg/log"
	"checkrun/pkg/model"
	"checkrun/pkg/system"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultSuiteFile is the suite file looked up when --config is not given.
const DefaultSuiteFile = "./checks.yaml"

func LoadConfig(filename string, logger log.Logger) (*model.Suite, error) {
	cfg, err := loadSuiteFile(filename, logger)
	if err != nil {
		return nil, err
	}

	// Validate includes before processing
	if errs := validateIncludes(cfg.Includes); len(errs) > 0 {
		return nil, errs
	}

	// Process includes recursively
	if len(cfg.Includes) > 0 {
		cfg, err = processIncludes(cfg, filename, logger)
		if err != nil {
			return nil, err
		}
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}

	return &cfg, nil
}

func validateIncludes(includes []string) model.ValidationErrors {
	var errs model.ValidationErrors
	for i, include := range includes {
		if strings.TrimSpace(include) == "" {
			errs = append(errs, model.ValidationError{Field: fmt.Sprintf("includes[%d]", i), Message: "include path cannot be empty"})
		}
	}
	return errs
}

// processIncludes processes the includes field of a Suite, loading and merging
// included suite files recursively.
func processIncludes(cfg model.Suite, baseFile string, logger log.Logger) (model.Suite, error) {
	visited := make(map[string]bool) // For cycle detection
	return processIncludesRecursive(cfg, baseFile, visited, logger)
}

func processIncludesRecursive(cfg model.Suite, baseFile string, visited map[string]bool, logger log.Logger) (model.Suite, error) {
	result := &model.Suite{}

	// Track this file to prevent cycles
	absBase, err := filepath.Abs(baseFile)
	if err != nil {
		return model.Suite{}, fmt.Errorf("failed to resolve absolute path for %s: %w", baseFile, err)
	}
	if visited[absBase] {
		return model.Suite{}, fmt.Errorf("circular include detected: %s", baseFile)
	}
	visited[absBase] = true

	// Process each include in order
	for _, includePath := range cfg.Includes {
		resolvedPath := resolveIncludePath(baseFile, includePath)

		includedCfg, err := loadSuiteFile(resolvedPath, logger)
		if err != nil {
			return model.Suite{}, fmt.Errorf("failed to load include '%s': %w", includePath, err)
		}

		// Recursively process nested includes
		if len(includedCfg.Includes) > 0 {
			includedCfg, err = processIncludesRecursive(includedCfg, resolvedPath, visited, logger)
			if err != nil {
				return model.Suite{}, err
			}
		}

		// Merge included suite into result
		result = mergeSuites(result, &includedCfg, logger)
	}

	// Finally merge the current file's content (highest priority)
	result = mergeSuites(result, &cfg, logger)

	return *result, nil
}

func loadSuiteFile(filename string, logger log.Logger) (model.Suite, error) {
	f, err := afero.ReadFile(system.AppFs, filename)
	if err != nil {
		return model.Suite{}, err
	}

	var cfg model.Suite
	err = yaml.Unmarshal(f, &cfg)
	if err != nil {
		return model.Suite{}, err
	}

	logger.Debug("Loaded suite file", "path", filename, "checks", len(cfg.Checks))

	return cfg, nil
}

func resolveIncludePath(baseFile, includePath string) string {
	// If absolute path, use as-is
	if filepath.IsAbs(includePath) {
		return includePath
	}

	// Relative to the directory containing baseFile
	baseDir := filepath.Dir(baseFile)
	return filepath.Join(baseDir, includePath)
}

// mergeSuites appends b's entries after a's. Later files win on order,
// so the including file's checks run after everything it includes.
// Duplicate check names are caught by Suite.Validate after the merge.
func mergeSuites(a, b *model.Suite, logger log.Logger) *model.Suite {
	merged := &model.Suite{}
	merged.Requirements = append(merged.Requirements, a.Requirements...)
	merged.Requirements = append(merged.Requirements, b.Requirements...)
	merged.Syncs = append(merged.Syncs, a.Syncs...)
	merged.Syncs = append(merged.Syncs, b.Syncs...)
	merged.Checks = append(merged.Checks, a.Checks...)
	merged.Checks = append(merged.Checks, b.Checks...)

	if len(a.Checks) > 0 && len(b.Checks) > 0 {
		logger.Debug("Merged suites", "base", len(a.Checks), "overlay", len(b.Checks))
	}

	return merged
}
