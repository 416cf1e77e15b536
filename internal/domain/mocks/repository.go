// Package mocks provides in-memory implementations of the domain ports for tests.
package mocks

import (
	"context"
	"slices"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// Repository is an in-memory implementation of ports.Repository.
// Stored values are deep copies so callers can't mutate them behind its back.
type Repository struct {
	Users       []*entities.User
	Communities []*entities.Community
	Sessions    []entities.Session

	// Err is returned by every call when set.
	Err error
	// SaveErr is returned by the Save methods only.
	SaveErr error

	SaveCalls int
	Closed    bool
}

// NewRepository creates a new mock Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// EnsureSchema implements ports.Repository.
func (m *Repository) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close implements ports.Repository.
func (m *Repository) Close() error {
	m.Closed = true
	return nil
}

// LoadUsers returns copies of the stored users.
func (m *Repository) LoadUsers(_ context.Context) ([]*entities.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*entities.User, len(m.Users))
	for i, u := range m.Users {
		out[i] = u.Clone()
	}
	return out, nil
}

// SaveUsers stores copies of users.
func (m *Repository) SaveUsers(_ context.Context, users []*entities.User) error {
	if err := m.saveErr(); err != nil {
		return err
	}
	m.SaveCalls++
	m.Users = make([]*entities.User, len(users))
	for i, u := range users {
		m.Users[i] = u.Clone()
	}
	return nil
}

// LoadCommunities returns copies of the stored communities.
func (m *Repository) LoadCommunities(_ context.Context) ([]*entities.Community, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*entities.Community, len(m.Communities))
	for i, c := range m.Communities {
		out[i] = c.Clone()
	}
	return out, nil
}

// SaveCommunities stores copies of communities.
func (m *Repository) SaveCommunities(_ context.Context, communities []*entities.Community) error {
	if err := m.saveErr(); err != nil {
		return err
	}
	m.Communities = make([]*entities.Community, len(communities))
	for i, c := range communities {
		m.Communities[i] = c.Clone()
	}
	return nil
}

// LoadSessions returns the stored sessions.
func (m *Repository) LoadSessions(_ context.Context) ([]entities.Session, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return slices.Clone(m.Sessions), nil
}

// SaveSessions stores sessions.
func (m *Repository) SaveSessions(_ context.Context, sessions []entities.Session) error {
	if err := m.saveErr(); err != nil {
		return err
	}
	m.Sessions = slices.Clone(sessions)
	return nil
}

func (m *Repository) saveErr() error {
	if m.Err != nil {
		return m.Err
	}
	return m.SaveErr
}
