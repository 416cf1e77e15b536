package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/jackut/internal/application/script"
	"github.com/ersonp/jackut/internal/infrastructure/config"
)

func newRunCmd() *cobra.Command {
	var persist, list bool

	cmd := &cobra.Command{
		Use:   "run <script>...",
		Short: "Run acceptance scripts against the network",
		Long: `Runs command scripts. Each line is a command followed by key=value
arguments. Prefix a line with "var=" to capture its result for later ${var}
references, with "expect <value>" to check the result, or with
"expectError <Kind>" to require a failure of that kind.

By default scripts run against a fresh in-memory database. With --persist
they run against the configured storage of the workspace.

Examples:
  jackut run testdata/social.txt
  jackut run --persist setup.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range script.Commands() {
					printLine(cmd, name)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one script is required")
			}
			return runScripts(cmd, args, persist)
		},
	}

	cmd.Flags().BoolVar(&persist, "persist", false, "Run against the workspace storage instead of memory")
	cmd.Flags().BoolVar(&list, "commands", false, "List the commands scripts may use")

	return cmd
}

func runScripts(cmd *cobra.Command, paths []string, persist bool) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	cfg := config.Default()
	if persist {
		if cfg, err = config.Load(base); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg.Storage = config.StorageConfig{Driver: config.DriverSQLite, Path: ":memory:"}
	}

	return withConfig(cmd, cfg, base, func(d *Deps) error {
		runner := script.NewRunner(d.Facade, d.Log)

		failed := 0
		for _, path := range paths {
			result, err := runner.RunFile(cmd.Context(), path)
			if err != nil {
				return err
			}

			for _, failure := range result.Failures {
				printLine(cmd, fmt.Sprintf("FAIL %s %s", path, failure))
			}
			printLine(cmd, fmt.Sprintf("%s: %d/%d steps passed", path, result.Passed, result.Steps))
			d.Log.Debug("script finished",
				zap.String("path", path),
				zap.Int("steps", result.Steps),
				zap.Int("failures", len(result.Failures)))
			failed += len(result.Failures)
		}

		if failed > 0 {
			return fmt.Errorf("%d steps failed", failed)
		}
		return nil
	})
}
