package cmd

import (
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/retirmentaudit/retirement-audit-launch/internal/output"
	"github.com/spf13/cobra"
)

// emitReport prints console formats to stdout when no output directory is given and
// writes every other format to files.
func emitReport(cmd *cobra.Command, result *domain.ProjectionResult, format, dir string) error {
	name := output.NormalizeFormatName(format)
	if dir == "" && (name == "console" || name == "console-lite") {
		f, err := output.Lookup(name)
		if err != nil {
			return err
		}
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	files, err := output.GenerateReport(result, format, dir)
	if err != nil {
		return err
	}
	for _, file := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", file)
	}
	return nil
}
