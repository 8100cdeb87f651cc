package cmd

import (
	"os"
	"path/filepath"

	"checkrun/pkg/config"
	"checkrun/pkg/log"
	"checkrun/pkg/model"
	"checkrun/pkg/system"

	"github.com/spf13/afero"
)

// loadSuite resolves the effective suite: the configured file when it
// exists, otherwise the built-in default pipeline. A --config given
// explicitly must exist; the implicit ./checks.yaml may be absent.
func loadSuite(logger log.Logger) (*model.Suite, error) {
	explicit := rootCmd.PersistentFlags().Changed("config")
	if !explicit {
		exists, err := afero.Exists(system.AppFs, cfgFile)
		if err != nil {
			return nil, err
		}
		if !exists {
			logger.Debug("No suite file found, using built-in pipeline", "path", cfgFile)
			return model.DefaultSuite(coverageTarget()), nil
		}
	}
	return config.LoadConfig(cfgFile, logger)
}

func coverageTarget() string {
	if covTarget != "" {
		return covTarget
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Base(wd)
}
