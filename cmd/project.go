package cmd

import (
	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/spf13/cobra"
)

var (
	projectInput  string
	projectFormat string
	projectOutput string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a household described in a YAML input document",
	Example: "  retirement-audit project -i household.yaml\n" +
		"  retirement-audit project -i household.yaml -f html -o reports",
	RunE: runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&projectInput, "input", "i", "", "Input document (YAML)")
	projectCmd.Flags().StringVarP(&projectFormat, "format", "f", "console", "Report format, or \"all\"")
	projectCmd.Flags().StringVarP(&projectOutput, "output", "o", "", "Directory for report files")
	_ = projectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	log, err := newCLILogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	req, err := config.NewInputParser().LoadFromFile(projectInput)
	if err != nil {
		return err
	}

	result, err := newEngine(log).Project(cmd.Context(), req)
	if err != nil {
		return err
	}
	return emitReport(cmd, result, projectFormat, projectOutput)
}
