package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new jackut workspace",
		Long:  "Creates a .jackut directory with default configuration and prepares the configured storage.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	result, err := handlers.NewInitHandler(openRepository).Handle(cmd.Context(), base)
	if err != nil {
		return err
	}

	printLine(cmd, fmt.Sprintf("Created %s", result.ConfigPath))
	printLine(cmd, fmt.Sprintf("Storage: %s (%s)", result.StoragePath, result.Driver))
	return nil
}
