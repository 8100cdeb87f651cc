package cmd

import (
	"context"
	"fmt"
	"os"

	"checkrun/pkg/checks"
	"checkrun/pkg/log"
	"checkrun/pkg/output"
	"checkrun/pkg/runner"
	"checkrun/pkg/system"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	logLevel   string
	covTarget  string
	noColor    bool
	jsonOutput bool
	logger     log.Logger
	cmdRunner  system.CommandRunner = &system.LiveCommandRunner{}
	rootCmd                         = &cobra.Command{
		Use:   "checkrun",
		Short: "checkrun runs a project's CI checks in order, stopping at the first failure",
		Long: `A fail-fast runner for a project's CI checks: formatting, import order,
and the test suite with coverage reporting.

With no suite file present, the built-in pipeline runs a black check, an
isort check, and pytest with coverage over the current project. A
checks.yaml file replaces the built-in pipeline with a declarative one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			writer := cmd.ErrOrStderr()
			logger = log.NewSlogLogger(level, writer)
			ctx := context.WithValue(cmd.Context(), "logger", logger)
			cmd.SetContext(ctx)
			if noColor {
				output.Disable()
			}
			return nil
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// The process exits with the first failed check's exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(runner.ExitStatus(err))
	}
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)
		suite, err := loadSuite(logger)
		if err != nil {
			return err
		}

		plan := checks.BuildPlan(suite)
		return checks.RunPipeline(cmd.OutOrStdout(), plan, cmdRunner, logger)
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./checks.yaml", "suite file (default is ./checks.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&covTarget, "cov-target", "", "Coverage target module for the built-in suite (default is the working directory name)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
