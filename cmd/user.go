package cmd

import (
	"context"
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/identity"
	"github.com/retirmentaudit/retirement-audit-launch/internal/session"
	"github.com/spf13/cobra"
)

var (
	userEmail    string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts in the local user directory",
}

var userSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withUsers(cmd, func(ctx context.Context, users identity.Provider) (identity.User, error) {
			return users.CreateUser(ctx, userEmail, userPassword)
		})
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials and print a session token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withUsers(cmd, func(ctx context.Context, users identity.Provider) (identity.User, error) {
			return users.Authenticate(ctx, userEmail, userPassword)
		})
	},
}

func init() {
	userCmd.PersistentFlags().StringVar(&userEmail, "email", "", "Account email")
	userCmd.PersistentFlags().StringVar(&userPassword, "password", "", "Account password")
	userCmd.AddCommand(userSignupCmd, userLoginCmd)
	rootCmd.AddCommand(userCmd)
}

// withUsers opens the user directory from settings, runs op, and prints the user along
// with a session token when a signing secret is configured.
func withUsers(cmd *cobra.Command, op func(context.Context, identity.Provider) (identity.User, error)) error {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}

	store, err := identity.Open(settings.Identity.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	user, err := op(cmd.Context(), store)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  User:  %s\n", user.Email)
	fmt.Fprintf(w, "  ID:    %s\n", user.ID)

	if settings.Auth.JWTSecret == "" {
		fmt.Fprintln(w, "  Token: not issued (no jwt secret configured)")
		return nil
	}
	issuer, err := session.NewIssuer(settings.Auth.JWTSecret, settings.Auth.Issuer, settings.Auth.TokenTTL())
	if err != nil {
		return err
	}
	token, err := issuer.Issue(user)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Token: %s\n", token)
	return nil
}
