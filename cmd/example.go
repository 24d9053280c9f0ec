package cmd

import (
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/output"
	"github.com/spf13/cobra"
)

var exampleOutput string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example input document",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOutput, "output", "o", "example_projection.yaml", "File to write")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, _ []string) error {
	doc := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(doc, exampleOutput); err != nil {
		return fmt.Errorf("write example: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Example input written to %s\n", exampleOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run: retirement-audit project -i %s\n", exampleOutput)
	return nil
}
