package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/jackut/internal/application/handlers"
	"github.com/ersonp/jackut/internal/domain/ports"
	"github.com/ersonp/jackut/internal/infrastructure/config"
	"github.com/ersonp/jackut/internal/infrastructure/filestore"
	"github.com/ersonp/jackut/internal/infrastructure/logger"
	"github.com/ersonp/jackut/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config *config.Config
	Facade *handlers.Facade
	Log    *zap.Logger
}

// basePath returns the directory that holds .jackut.
func basePath() (string, error) {
	if globalDir != "" {
		return globalDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// sessionID returns the session given by flag or environment.
func sessionID() (string, error) {
	if globalSession != "" {
		return globalSession, nil
	}
	if id := os.Getenv("JACKUT_SESSION"); id != "" {
		return id, nil
	}
	return "", errors.New("session is required (use --session or JACKUT_SESSION)")
}

// openRepository opens the storage selected by cfg.
func openRepository(cfg *config.Config, base string) (ports.Repository, error) {
	path := cfg.StoragePath(base)

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		if path != ":memory:" {
			if err := os.MkdirAll(config.ConfigDir(base), 0755); err != nil {
				return nil, fmt.Errorf("creating config directory: %w", err)
			}
		}
		repo, err := sqlite.NewRepository(config.StorageConfig{Driver: cfg.Storage.Driver, Path: path})
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		return repo, nil
	case config.DriverFile:
		store, err := filestore.NewStore(path)
		if err != nil {
			return nil, fmt.Errorf("creating file store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newLogger builds the logger configured for base. Console output goes to w.
func newLogger(cfg *config.Config, base string, w io.Writer) (*zap.Logger, io.Closer, error) {
	return logger.New(logger.Options{
		Config:   cfg.Log,
		FilePath: cfg.LogFilePath(base),
		Console:  w,
	})
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(cmd *cobra.Command, fn func(*Deps) error) error {
	base, err := basePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(base)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return withConfig(cmd, cfg, base, fn)
}

// withConfig builds dependencies from an already loaded config.
func withConfig(cmd *cobra.Command, cfg *config.Config, base string, fn func(*Deps) error) error {
	log, logCloser, err := newLogger(cfg, base, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logCloser.Close()
	defer func() { _ = log.Sync() }()

	repo, err := openRepository(cfg, base)
	if err != nil {
		return err
	}
	defer repo.Close()

	facade, err := handlers.NewFacade(cmd.Context(), repo, log)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	return fn(&Deps{
		Config: cfg,
		Facade: facade,
		Log:    log,
	})
}

// withFacade provides the facade to commands that only need it.
func withFacade(cmd *cobra.Command, fn func(*handlers.Facade) error) error {
	return withDeps(cmd, func(d *Deps) error {
		return fn(d.Facade)
	})
}

// withSession resolves the session id and provides the facade.
func withSession(cmd *cobra.Command, fn func(f *handlers.Facade, session string) error) error {
	session, err := sessionID()
	if err != nil {
		return err
	}
	return withFacade(cmd, func(f *handlers.Facade) error {
		return fn(f, session)
	})
}
