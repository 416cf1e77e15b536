package services

import (
	"github.com/pkg/errors"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// SessionService authenticates users and tracks their active sessions.
type SessionService struct {
	users    *UserRegistry
	sessions []entities.Session
}

// NewSessionService creates a session service seeded with persisted sessions.
func NewSessionService(users *UserRegistry, sessions []entities.Session) *SessionService {
	s := &SessionService{users: users}
	s.Replace(sessions)
	return s
}

// Replace installs sessions, skipping any whose login is no longer registered.
func (s *SessionService) Replace(sessions []entities.Session) {
	s.sessions = nil
	for _, sess := range sessions {
		if sess.ID == "" || !s.users.Exists(sess.Login) {
			continue
		}
		s.sessions = append(s.sessions, sess)
	}
}

// Open checks the credentials and returns a session for login. An already
// active login gets its existing session back.
func (s *SessionService) Open(login, password string) (entities.Session, error) {
	if login == "" || password == "" {
		return entities.Session{}, entities.ErrBadCredentials
	}

	u, err := s.users.FindByLogin(login)
	if err != nil || !u.CheckPassword(password) {
		return entities.Session{}, errors.Wrapf(entities.ErrBadCredentials, "login %q", login)
	}

	for _, sess := range s.sessions {
		if sess.Login == login {
			return sess, nil
		}
	}

	sess := entities.Session{ID: newID(), Login: login, OpenedAt: timeNow()}
	s.sessions = append(s.sessions, sess)
	return sess, nil
}

// IsActive reports whether id names an open session.
func (s *SessionService) IsActive(id string) bool {
	_, ok := s.find(id)
	return ok
}

// Resolve returns the login behind session id.
func (s *SessionService) Resolve(id string) (string, error) {
	sess, ok := s.find(id)
	if !ok {
		return "", errors.Wrapf(entities.ErrUserNotFound, "session %q", id)
	}
	return sess.Login, nil
}

// Close ends session id. It reports false when no such session was open.
func (s *SessionService) Close(id string) bool {
	for i, sess := range s.sessions {
		if sess.ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return true
		}
	}
	return false
}

// Forget ends every session of login and returns how many were closed.
func (s *SessionService) Forget(login string) int {
	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.Login != login {
			kept = append(kept, sess)
		}
	}
	n := len(s.sessions) - len(kept)
	s.sessions = kept
	return n
}

// Clear ends every session.
func (s *SessionService) Clear() {
	s.sessions = nil
}

// All returns the open sessions in opening order.
func (s *SessionService) All() []entities.Session {
	out := make([]entities.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

func (s *SessionService) find(id string) (entities.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return entities.Session{}, false
}
