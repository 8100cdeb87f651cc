package cmd

import (
	"encoding/json"
	"fmt"

	"checkrun/pkg/checks"
	"checkrun/pkg/log"

	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Shows the ordered checks that would run, without executing them",
	Long: `The plan command resolves the effective suite and prints every check in
execution order, including the commands and environment changes each one
would perform. Nothing is executed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cmd.Context().Value("logger").(log.Logger)
		suite, err := loadSuite(logger)
		if err != nil {
			return err
		}

		plan := checks.BuildPlan(suite)

		if jsonOutput {
			checksForJSON := []checkForJSON{}
			for _, check := range plan {
				checksForJSON = append(checksForJSON, checkForJSON{
					Type:        fmt.Sprintf("%T", check),
					Name:        check.Name(),
					Description: check.Description(),
					Details:     check.ExecutionDetails(),
				})
			}
			jsonBytes, err := json.MarshalIndent(checksForJSON, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal plan to JSON: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(jsonBytes))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "The following checks would run, in order:")
		for _, check := range plan {
			fmt.Fprintf(cmd.OutOrStdout(), "=> %s\n", check.Description())
			for _, detail := range check.ExecutionDetails() {
				fmt.Fprintf(cmd.OutOrStdout(), "   - %s\n", detail)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the plan in JSON format")
}
