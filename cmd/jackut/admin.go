package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/jackut/internal/application/handlers"
	"github.com/ersonp/jackut/internal/domain/entities"
	"github.com/ersonp/jackut/internal/infrastructure/snapshot"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every user, community and session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset erases all data; pass --yes to confirm")
			}
			return withFacade(cmd, func(f *handlers.Facade) error {
				if err := f.ResetAll(cmd.Context()); err != nil {
					return err
				}
				printLine(cmd, "All data erased")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}

type exportFlags struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole network to a file",
		Long:  "Writes a snapshot of users, communities and sessions in JSON or YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format (json, yaml); inferred from --output when empty")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	codec := snapshot.ForFormat(flags.format)
	if flags.format == "" {
		codec = snapshot.ForFormat("json")
		if flags.output != "" {
			if c := snapshot.ForFile(flags.output); c != nil {
				codec = c
			}
		}
	}
	if codec == nil {
		return fmt.Errorf("invalid format %q, valid formats: json, yaml", flags.format)
	}

	return withDeps(cmd, func(d *Deps) error {
		snap := d.Facade.Snapshot()

		if flags.output == "" {
			if err := codec.Encode(cmd.OutOrStdout(), snap); err != nil {
				return fmt.Errorf("encoding snapshot: %w", err)
			}
		} else if err := writeSnapshot(flags.output, codec, snap); err != nil {
			return err
		}

		d.Log.Info("exported snapshot",
			zap.Int("users", len(snap.Users)),
			zap.Int("communities", len(snap.Communities)))
		if flags.output != "" {
			printLine(cmd, fmt.Sprintf("Exported %d users and %d communities to %s", len(snap.Users), len(snap.Communities), flags.output))
		}
		return nil
	})
}

func writeSnapshot(path string, codec snapshot.Codec, snap *entities.Snapshot) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := codec.Encode(f, snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

func newImportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the whole network with a snapshot file",
		Long: `Reads a JSON or YAML snapshot and replaces all current state with it.
The snapshot is validated first; nothing changes when it is inconsistent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format (json, yaml); inferred from the file extension when empty")

	return cmd
}

func runImport(cmd *cobra.Command, path, format string) error {
	codec := snapshot.ForFile(path)
	if format != "" {
		codec = snapshot.ForFormat(format)
	}
	if codec == nil {
		return fmt.Errorf("cannot determine format of %s, use --format", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	snap, err := codec.Decode(file)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	return withFacade(cmd, func(f *handlers.Facade) error {
		if err := f.Restore(cmd.Context(), snap); err != nil {
			return err
		}
		printLine(cmd, fmt.Sprintf("Imported %d users and %d communities", len(snap.Users), len(snap.Communities)))
		return nil
	})
}
