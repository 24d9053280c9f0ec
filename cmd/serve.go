package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/identity"
	"github.com/retirmentaudit/retirement-audit-launch/internal/logging"
	"github.com/retirmentaudit/retirement-audit-launch/internal/server"
	"github.com/retirmentaudit/retirement-audit-launch/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection and account API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	levelName := settings.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	log, err := logging.New(settings.Log.Development, level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	users, err := identity.Open(settings.Identity.DBPath)
	if err != nil {
		return err
	}
	defer users.Close()

	sessions, err := session.NewIssuer(settings.Auth.JWTSecret, settings.Auth.Issuer, settings.Auth.TokenTTL())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting server",
		zap.String("addr", settings.Server.Addr),
		zap.String("users_db", settings.Identity.DBPath),
	)
	srv := server.New(newEngine(log), users, sessions, log)
	return srv.ListenAndServe(ctx, settings.Server.Addr, settings.Server)
}

