package cmd

import (
	"fmt"
	"strings"

	"github.com/retirmentaudit/retirement-audit-launch/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and aliases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "  Formats: %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Fprintf(w, "  Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
