// Package main provides the entry point for the jackut CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/domain/entities"
)

var (
	version       = "0.1.0-dev"
	globalDir     string
	globalSession string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if kind := entities.KindOf(err); kind != "" {
			fmt.Fprintf(os.Stderr, "error [%s]: %v\n", kind, err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jackut",
		Short:         "A small social network: friends, crushes, idols, enemies, notes and communities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalDir, "dir", "d", "", "Directory holding .jackut (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&globalSession, "session", "s", "", "Session id (or set JACKUT_SESSION)")

	rootCmd.AddCommand(
		newInitCmd(),
		newUserCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newProfileCmd(),
		newFriendCmd(),
		newEnemyCmd(),
		newCrushCmd(),
		newIdolCmd(),
		newNoteCmd(),
		newCommunityCmd(),
		newResetCmd(),
		newExportCmd(),
		newImportCmd(),
		newRunCmd(),
	)

	return rootCmd
}
