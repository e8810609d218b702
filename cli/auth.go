package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"pixelarium/domain"
)

func init() {
	// login
	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password required")
			}
			start := time.Now()
			u, err := sessionStore.Login(context.Background(), email, password)
			if err != nil {
				slog.Error("login failed", "email", email, "error", err)
				return err
			}
			slog.Info("logged in", "user_id", u.ID, "duration_ms", time.Since(start).Milliseconds())
			fmt.Printf("logged in as %s\n", u.UserName)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "email")
	loginCmd.Flags().StringVar(&password, "password", "", "password")
	rootCmd.AddCommand(loginCmd)

	// register
	var profile domain.CreateUser
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile.Email == "" || profile.Password == "" || profile.UserName == "" {
				return errors.New("--email, --password and --user-name required")
			}
			u, err := sessionStore.Register(context.Background(), profile)
			if err != nil {
				slog.Error("register failed", "email", profile.Email, "error", err)
				return err
			}
			slog.Info("registered", "user_id", u.ID)
			fmt.Printf("welcome, %s\n", u.UserName)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&profile.Email, "email", "", "email")
	registerCmd.Flags().StringVar(&profile.Password, "password", "", "password")
	registerCmd.Flags().StringVar(&profile.FirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&profile.LastName, "last-name", "", "last name")
	registerCmd.Flags().StringVar(&profile.UserName, "user-name", "", "user name")
	rootCmd.AddCommand(registerCmd)

	// logout
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionStore.Logout()
			fmt.Println("logged out")
			return nil
		},
	}
	rootCmd.AddCommand(logoutCmd)

	// whoami
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := sessionStore.Current()
			if u == nil {
				fmt.Println("not logged in")
				return nil
			}
			printJSON(u)
			return nil
		},
	}
	rootCmd.AddCommand(whoamiCmd)
}
