package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"checkrun/pkg/model"
)

// BuildEnv returns the environment for a check. With no overrides it
// returns nil, meaning the check inherits the process environment
// untouched. Otherwise it returns a copy of os.Environ() with each
// override applied: Value replaces the variable, Append extends a
// path-list variable with one entry. Relative append entries are
// resolved against the current working directory, matching the usual
// "add the project root to PYTHONPATH" pattern.
func BuildEnv(vars []model.EnvVar) ([]string, error) {
	if len(vars) == 0 {
		return nil, nil
	}

	env := os.Environ()
	for _, v := range vars {
		if v.Value != "" {
			env = setVar(env, v.Name, v.Value)
			continue
		}

		entry := v.Append
		if !filepath.IsAbs(entry) {
			abs, err := filepath.Abs(entry)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve append entry '%s' for %s: %w", entry, v.Name, err)
			}
			entry = abs
		}
		env = appendPathList(env, v.Name, entry)
	}

	return env, nil
}

func setVar(env []string, name, value string) []string {
	prefix := name + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func appendPathList(env []string, name, entry string) []string {
	prefix := name + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			current := kv[len(prefix):]
			if current == "" {
				env[i] = prefix + entry
			} else {
				env[i] = prefix + current + string(os.PathListSeparator) + entry
			}
			return env
		}
	}
	return append(env, prefix+entry)
}
