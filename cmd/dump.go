package cmd

import (
	"encoding/json"
	"fmt"

	"checkrun/pkg/log"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dumps the effective suite to the console",
	Long: `The dump command prints the effective suite in YAML format, after
resolving includes and defaults. Useful for seeing what a suite file plus
its includes actually amounts to, or for bootstrapping a checks.yaml from
the built-in pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)
		suite, err := loadSuite(logger)
		if err != nil {
			return err
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(suite, "", "  ")
			if err != nil {
				return fmt.Errorf("error marshaling to JSON: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonData))
			return nil
		}

		yamlData, err := yaml.Marshal(suite)
		if err != nil {
			return fmt.Errorf("error marshaling to YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(yamlData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the suite in JSON format")
}
