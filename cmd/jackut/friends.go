package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/handlers"
)

func newFriendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friend",
		Short: "Manage friendships",
		Long: `Friendship is a handshake: the first request stays pending until the
other user requests back, then both become friends.`,
	}

	var pending bool
	list := &cobra.Command{
		Use:   "list <login>",
		Short: "List the friends of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFacade(cmd, func(f *handlers.Facade) error {
				if pending {
					items, err := f.PendingFriends(args[0])
					return printList(cmd, items, err)
				}
				items, err := f.Friends(args[0])
				return printList(cmd, items, err)
			})
		},
	}
	list.Flags().BoolVar(&pending, "pending", false, "List outstanding requests sent by the user instead")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <login>",
			Short: "Send or confirm a friend request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.AddFriend(cmd.Context(), session, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "remove <login>",
			Short: "End a friendship",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.RemoveFriend(cmd.Context(), session, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "check <login> <friend>",
			Short: "Print whether two users are friends",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withFacade(cmd, func(f *handlers.Facade) error {
					ok, err := f.IsFriend(args[0], args[1])
					return printBool(cmd, ok, err)
				})
			},
		},
		list,
	)
	return cmd
}
