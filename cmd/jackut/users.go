package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/handlers"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserCreateCmd(), newUserDeleteCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <login> <password> <name>",
		Short: "Register a new account",
		Long: `Registers a new account. Logins and display names share one namespace:
a new account is rejected when its login or name is already taken as a login.

Examples:
  jackut user create alice secret "Alice Liddell"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFacade(cmd, func(f *handlers.Facade) error {
				if err := f.CreateUser(cmd.Context(), args[0], args[1], args[2]); err != nil {
					return err
				}
				printLine(cmd, fmt.Sprintf("Created user %s", args[0]))
				return nil
			})
		},
	}
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the session user and every trace of it",
		Long: `Deletes the account behind the current session. Every relationship,
membership, owned community and note sent by the user is removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(f *handlers.Facade, session string) error {
				if err := f.DeleteUser(cmd.Context(), session); err != nil {
					return err
				}
				printLine(cmd, "Account deleted")
				return nil
			})
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <login> <password>",
		Short: "Open a session and print its id",
		Long: `Opens a session and prints its id. Pass the id to later commands with
--session or the JACKUT_SESSION environment variable.

Examples:
  export JACKUT_SESSION=$(jackut login alice secret)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFacade(cmd, func(f *handlers.Facade) error {
				id, err := f.OpenSession(cmd.Context(), args[0], args[1])
				return printText(cmd, id, err)
			})
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(f *handlers.Facade, session string) error {
				return f.CloseSession(cmd.Context(), session)
			})
		},
	}
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read and edit profile attributes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <login> <attribute>",
			Short: "Print a profile attribute (name and login are always set)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					v, err := f.GetAttribute(args[0], args[1])
					return printText(cmd, v, err)
				})
			},
		},
		&cobra.Command{
			Use:   "set <attribute> <value>",
			Short: "Set a profile attribute of the session user",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.EditProfile(cmd.Context(), session, args[0], args[1])
				})
			},
		},
	)
	return cmd
}
