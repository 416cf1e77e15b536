package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/jackut/internal/domain/ports"
	"github.com/ersonp/jackut/internal/infrastructure/config"
)

// RepositoryOpener opens the repository selected by cfg.
type RepositoryOpener func(cfg *config.Config, basePath string) (ports.Repository, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	open RepositoryOpener
}

// NewInitHandler creates a new init handler.
func NewInitHandler(open RepositoryOpener) *InitHandler {
	return &InitHandler{open: open}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	Driver      string
	StoragePath string
}

// Handle writes the default config and prepares the configured storage.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("jackut already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if h.open != nil {
		repo, err := h.open(cfg, basePath)
		if err != nil {
			return nil, fmt.Errorf("opening storage: %w", err)
		}
		defer repo.Close()

		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("preparing storage: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		Driver:      cfg.Storage.Driver,
		StoragePath: cfg.StoragePath(basePath),
	}, nil
}
