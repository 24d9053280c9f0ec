package cmd

import (
	"errors"
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/form"
	"github.com/spf13/cobra"
)

var (
	formFormat string
	formOutput string
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Enter a household interactively and show its projection",
	RunE:  runForm,
}

func init() {
	formCmd.Flags().StringVarP(&formFormat, "format", "f", "console", "Report format, or \"all\"")
	formCmd.Flags().StringVarP(&formOutput, "output", "o", "", "Directory for report files")
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	log, err := newCLILogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	req, err := form.Run(form.NewAnswers())
	if errors.Is(err, form.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "  Aborted.")
		return nil
	}
	if err != nil {
		return err
	}

	result, err := newEngine(log).Project(cmd.Context(), req)
	if err != nil {
		return err
	}
	return emitReport(cmd, result, formFormat, formOutput)
}
