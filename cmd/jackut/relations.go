package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/handlers"
)

func newEnemyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enemy",
		Short: "Manage enemies (blocks friendship, crushes, idols and notes both ways)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <login>",
			Short: "Declare a user an enemy",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.AddEnemy(cmd.Context(), session, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "check <login> <other>",
			Short: "Print whether two users are enemies",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					ok, err := f.IsEnemy(args[0], args[1])
					return printBool(cmd, ok, err)
				})
			},
		},
		&cobra.Command{
			Use:   "list <login>",
			Short: "List the enemies of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					items, err := f.Enemies(args[0])
					return printList(cmd, items, err)
				})
			},
		},
	)
	return cmd
}

func newCrushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crush",
		Short: "Manage crushes (private; a mutual crush notifies both users)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <login>",
			Short: "Add a crush",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.AddCrush(cmd.Context(), session, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "check <login>",
			Short: "Print whether the session user has a crush on a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					ok, err := f.IsCrush(session, args[0])
					return printBool(cmd, ok, err)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the crushes of the session user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					items, err := f.Crushes(session)
					return printList(cmd, items, err)
				})
			},
		},
	)
	return cmd
}

func newIdolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idol",
		Short: "Manage idols and fans",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <login>",
			Short: "Become a fan of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.AddIdol(cmd.Context(), session, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "check <fan> <idol>",
			Short: "Print whether a user is a fan of another",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					ok, err := f.IsFan(args[0], args[1])
					return printBool(cmd, ok, err)
				})
			},
		},
		&cobra.Command{
			Use:   "fans <login>",
			Short: "List the fans of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					items, err := f.Fans(args[0])
					return printList(cmd, items, err)
				})
			},
		},
		&cobra.Command{
			Use:   "list <login>",
			Short: "List the idols of a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					items, err := f.Idols(args[0])
					return printList(cmd, items, err)
				})
			},
		},
	)
	return cmd
}
