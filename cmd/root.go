// Package cmd implements the retirement-audit CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/retirmentaudit/retirement-audit-launch/internal/calculation"
	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagSettings string
	flagLogLevel string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:           "retirement-audit",
	Short:         "Retirement savings and home equity projections",
	Long:          "Project retirement accounts and home equity to a target age, as a report or over an HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default "+config.SettingsPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log per-account calculation detail")
}

// cliLevel resolves the log level for interactive commands, which stay quiet below warn
// unless asked otherwise.
func cliLevel() (logging.LogLevel, error) {
	if flagLogLevel != "" {
		return logging.ParseLevel(flagLogLevel)
	}
	if flagDebug {
		return logging.DebugLevel, nil
	}
	return logging.WarnLevel, nil
}

func newCLILogger() (*zap.Logger, error) {
	level, err := cliLevel()
	if err != nil {
		return nil, err
	}
	return logging.NewCLI(level)
}

func newEngine(log *zap.Logger) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(log.Sugar())
	engine.Debug = flagDebug
	return engine
}
