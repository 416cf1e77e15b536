// Package filestore persists each collection as a JSON document in a directory.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// Collection file names.
const (
	UsersFile       = "users.json"
	CommunitiesFile = "communities.json"
	SessionsFile    = "sessions.json"
)

// Store implements ports.Repository on top of flat JSON files.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("filestore directory is required")
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the collection files.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureSchema creates the storage directory.
func (s *Store) EnsureSchema(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (s *Store) Close() error {
	return nil
}

// LoadUsers reads users.json. A missing file yields no users.
func (s *Store) LoadUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := s.read(ctx, UsersFile, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u != nil && u.Profile == nil {
			u.Profile = entities.NewProfile()
		}
	}
	return users, nil
}

// SaveUsers replaces users.json.
func (s *Store) SaveUsers(ctx context.Context, users []*entities.User) error {
	return s.write(ctx, UsersFile, users)
}

// LoadCommunities reads communities.json. A missing file yields no communities.
func (s *Store) LoadCommunities(ctx context.Context) ([]*entities.Community, error) {
	var communities []*entities.Community
	if err := s.read(ctx, CommunitiesFile, &communities); err != nil {
		return nil, err
	}
	return communities, nil
}

// SaveCommunities replaces communities.json.
func (s *Store) SaveCommunities(ctx context.Context, communities []*entities.Community) error {
	return s.write(ctx, CommunitiesFile, communities)
}

// LoadSessions reads sessions.json. A missing file yields no sessions.
func (s *Store) LoadSessions(ctx context.Context) ([]entities.Session, error) {
	var sessions []entities.Session
	if err := s.read(ctx, SessionsFile, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SaveSessions replaces sessions.json.
func (s *Store) SaveSessions(ctx context.Context, sessions []entities.Session) error {
	return s.write(ctx, SessionsFile, sessions)
}

func (s *Store) read(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// write replaces name atomically: the document goes to a temp file in the
// same directory which is then renamed over the target.
func (s *Store) write(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
