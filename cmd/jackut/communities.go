package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/handlers"
)

func newCommunityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "community",
		Aliases: []string{"comm"},
		Short:   "Manage communities and their broadcasts",
	}

	var desc string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a community owned by the session user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(f *handlers.Facade, session string) error {
				if err := f.CreateCommunity(cmd.Context(), session, args[0], desc); err != nil {
					return err
				}
				printLine(cmd, fmt.Sprintf("Created community %s", args[0]))
				return nil
			})
		},
	}
	create.Flags().StringVar(&desc, "description", "", "Community description")

	var memberOf string
	list := &cobra.Command{
		Use:   "list",
		Short: "List communities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFacade(cmd, func(f *handlers.Facade) error {
				if memberOf != "" {
					items, err := f.Memberships(memberOf)
					return printList(cmd, items, err)
				}
				return printList(cmd, f.Communities(), nil)
			})
		},
	}
	list.Flags().StringVar(&memberOf, "member", "", "Only communities the given login belongs to, in join order")

	cmd.AddCommand(
		create,
		&cobra.Command{
			Use:   "join <name>",
			Short: "Join a community",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.JoinCommunity(cmd.Context(), session, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "info <name>",
			Short: "Print the description and owner of a community",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					description, err := f.DescribeCommunity(args[0])
					if err != nil {
						return err
					}
					owner, err := f.CommunityOwner(args[0])
					if err != nil {
						return err
					}
					printLine(cmd, fmt.Sprintf("Description: %s", description))
					printLine(cmd, fmt.Sprintf("Owner: %s", owner))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "members <name>",
			Short: "List the members of a community, owner first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					items, err := f.CommunityMembers(args[0])
					return printList(cmd, items, err)
				})
			},
		},
		&cobra.Command{
			Use:   "send <name> <text>",
			Short: "Broadcast a message to every member of a community",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.Broadcast(cmd.Context(), session, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "read",
			Short: "Read the oldest community message of the session user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					msg, err := f.ReadBroadcast(cmd.Context(), session)
					if err != nil {
						return err
					}
					printLine(cmd, msg.Text)
					return nil
				})
			},
		},
		list,
	)
	return cmd
}
