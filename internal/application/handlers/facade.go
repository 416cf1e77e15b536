// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ersonp/jackut/internal/domain/entities"
	"github.com/ersonp/jackut/internal/domain/ports"
	"github.com/ersonp/jackut/internal/domain/services"
)

// Facade is the caller-facing surface of a Jackut instance. Calls acting on
// behalf of a user take a session id; pure lookups take logins. Every
// successful mutation is followed by a full flush to the repository.
type Facade struct {
	mu   sync.RWMutex
	net  *services.Network
	repo ports.Repository
	log  *zap.Logger
}

// NewFacade loads the persisted state from repo and returns a ready facade.
func NewFacade(ctx context.Context, repo ports.Repository, log *zap.Logger) (*Facade, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("preparing storage: %w", err)
	}

	users, err := repo.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	communities, err := repo.LoadCommunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading communities: %w", err)
	}
	sessions, err := repo.LoadSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	net := services.NewNetwork(&entities.Snapshot{
		Users:       users,
		Communities: communities,
		Sessions:    sessions,
	})
	log.Debug("state loaded",
		zap.Int("users", net.Users.Len()),
		zap.Int("communities", net.Communities.Len()),
		zap.Int("sessions", len(net.Sessions.All())),
	)

	return &Facade{
		net:  net,
		repo: repo,
		log:  log,
	}, nil
}

// flush writes every collection to the repository. Failures are logged and
// never roll back the in-memory state. Callers hold the write lock.
func (f *Facade) flush(ctx context.Context, op string) {
	f.log.Debug("flushing", zap.String("op", op))

	if err := f.repo.SaveUsers(ctx, f.net.Users.All()); err != nil {
		f.log.Error("saving users", zap.String("op", op), zap.Error(err))
	}
	if err := f.repo.SaveCommunities(ctx, f.net.Communities.All()); err != nil {
		f.log.Error("saving communities", zap.String("op", op), zap.Error(err))
	}
	if err := f.repo.SaveSessions(ctx, f.net.Sessions.All()); err != nil {
		f.log.Error("saving sessions", zap.String("op", op), zap.Error(err))
	}
}

// mutate runs fn under the write lock and flushes when it succeeds.
func (f *Facade) mutate(ctx context.Context, op string, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := fn(); err != nil {
		f.log.Debug("rejected", zap.String("op", op), zap.String("kind", entities.KindOf(err)), zap.Error(err))
		return err
	}
	f.flush(ctx, op)
	return nil
}

// mutateAs resolves session to a login and runs fn as that user.
func (f *Facade) mutateAs(ctx context.Context, op, session string, fn func(login string) error) error {
	return f.mutate(ctx, op, func() error {
		login, err := f.net.Sessions.Resolve(session)
		if err != nil {
			return err
		}
		return fn(login)
	})
}

// query runs fn under the read lock.
func (f *Facade) query(fn func() error) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return fn()
}

// OpenSession authenticates login and returns its session id.
func (f *Facade) OpenSession(ctx context.Context, login, password string) (string, error) {
	var id string
	err := f.mutate(ctx, "open session", func() error {
		sess, err := f.net.Sessions.Open(login, password)
		if err != nil {
			return err
		}
		id = sess.ID
		return nil
	})
	return id, err
}

// IsActiveSession reports whether session is open.
func (f *Facade) IsActiveSession(session string) bool {
	var active bool
	_ = f.query(func() error {
		active = f.net.Sessions.IsActive(session)
		return nil
	})
	return active
}

// CloseSession ends session. Closing an unknown session fails with UserNotFound.
func (f *Facade) CloseSession(ctx context.Context, session string) error {
	return f.mutateAs(ctx, "close session", session, func(_ string) error {
		f.net.Sessions.Close(session)
		return nil
	})
}

// ResetAll wipes every user, community and session.
func (f *Facade) ResetAll(ctx context.Context) error {
	return f.mutate(ctx, "reset", func() error {
		f.net.Reset()
		f.log.Info("all data removed")
		return nil
	})
}

// Snapshot returns a detached copy of the whole state.
func (f *Facade) Snapshot() *entities.Snapshot {
	var snap *entities.Snapshot
	_ = f.query(func() error {
		snap = f.net.Snapshot()
		return nil
	})
	return snap
}

// Restore replaces the whole state with snap after validating it.
func (f *Facade) Restore(ctx context.Context, snap *entities.Snapshot) error {
	return f.mutate(ctx, "restore", func() error {
		if err := f.net.Restore(snap); err != nil {
			return err
		}
		f.log.Info("snapshot restored",
			zap.Int("users", len(snap.Users)),
			zap.Int("communities", len(snap.Communities)),
		)
		return nil
	})
}

// Shutdown ends every session, writes a final snapshot and closes the repository.
func (f *Facade) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.net.Sessions.Clear()
	f.flush(ctx, "shutdown")
	if err := f.repo.Close(); err != nil {
		return fmt.Errorf("closing repository: %w", err)
	}
	return nil
}
