// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// UserRepository persists the user registry, profiles included.
type UserRepository interface {
	// LoadUsers returns every stored user in registration order.
	LoadUsers(ctx context.Context) ([]*entities.User, error)

	// SaveUsers replaces the stored users with the given snapshot.
	SaveUsers(ctx context.Context, users []*entities.User) error
}

// CommunityRepository persists the community registry.
type CommunityRepository interface {
	// LoadCommunities returns every stored community in creation order.
	LoadCommunities(ctx context.Context) ([]*entities.Community, error)

	// SaveCommunities replaces the stored communities with the given snapshot.
	SaveCommunities(ctx context.Context, communities []*entities.Community) error
}

// SessionRepository persists active sessions.
type SessionRepository interface {
	LoadSessions(ctx context.Context) ([]entities.Session, error)
	SaveSessions(ctx context.Context, sessions []entities.Session) error
}

// Repository is the full persistence boundary of a Jackut instance.
// Every Save call writes a complete snapshot of its collection; there are
// no incremental updates.
type Repository interface {
	UserRepository
	CommunityRepository
	SessionRepository

	// EnsureSchema prepares the backing storage if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the backing storage.
	Close() error
}
