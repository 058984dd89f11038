package main

import (
	"fmt"

	"github.com/askademy/client-go"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			identity, _ := app.session.Identity()
			fmt.Printf("Signed in as %s (%s)\n", identity.Email, identity.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Logout()
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	input := askademy.RegisterInput{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (sign in afterwards with `askademy login`)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.session.Register(cmd.Context(), input); err != nil {
				return err
			}
			fmt.Println("Account created. Sign in with `askademy login`.")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVarP(&input.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "account password (min 6 characters)")
	cmd.Flags().StringVarP(&input.Role, "role", "r", string(askademy.RoleStudent), "account role (STUDENT or PROFESSOR)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active identity and its capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity := app.identity()
			if identity == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s (%s, account %d)\n", identity.Email, identity.Role, identity.AccountID)
			fmt.Printf("  moderate content: %v\n", askademy.CanModerate(identity))
			fmt.Printf("  verify answers:   %v\n", askademy.CanVerifyAnswer(identity))
			return nil
		},
	}
}
