package handlers

import (
	"context"

	"go.uber.org/zap"
)

// CreateUser registers a new account.
func (f *Facade) CreateUser(ctx context.Context, login, password, name string) error {
	return f.mutate(ctx, "create user", func() error {
		if _, err := f.net.Users.Register(name, password, login); err != nil {
			return err
		}
		f.log.Info("user registered", zap.String("login", login))
		return nil
	})
}

// GetAttribute returns a profile attribute of login.
func (f *Facade) GetAttribute(login, key string) (string, error) {
	var value string
	err := f.query(func() error {
		var err error
		value, err = f.net.Users.Attribute(login, key)
		return err
	})
	return value, err
}

// EditProfile sets a profile attribute of the session user.
func (f *Facade) EditProfile(ctx context.Context, session, key, value string) error {
	return f.mutateAs(ctx, "edit profile", session, func(login string) error {
		return f.net.Users.SetAttribute(login, key, value)
	})
}

// DeleteUser removes the session user and every trace of it.
func (f *Facade) DeleteUser(ctx context.Context, session string) error {
	return f.mutateAs(ctx, "delete user", session, func(login string) error {
		report, err := f.net.Relationships.DeleteUser(login)
		if err != nil {
			return err
		}
		f.log.Info("user deleted",
			zap.String("login", report.Login),
			zap.Strings("communities", report.DeletedCommunities),
			zap.Int("purged_notes", report.PurgedNotes),
			zap.Int("closed_sessions", report.ClosedSessions),
		)
		return nil
	})
}
