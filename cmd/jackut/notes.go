package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/handlers"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Send and read notes",
		Long:  "Notes are queued on the recipient's profile and read oldest first. Reading a note removes it.",
	}

	var verbose bool
	read := &cobra.Command{
		Use:   "read",
		Short: "Read the oldest note of the session user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(f *handlers.Facade, session string) error {
				note, err := f.ReadNote(cmd.Context(), session)
				if err != nil {
					return err
				}
				if verbose {
					printLine(cmd, fmt.Sprintf("from %s at %s", note.Sender, note.SentAt.Format("2006-01-02 15:04:05")))
				}
				printLine(cmd, note.Text)
				return nil
			})
		},
	}
	read.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the sender and time before the text")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "send <login> <text>",
			Short: "Send a note to a user",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSession(cmd, func(f *handlers.Facade, session string) error {
					return f.SendNote(cmd.Context(), session, args[0], args[1])
				})
			},
		},
		read,
	)
	return cmd
}
