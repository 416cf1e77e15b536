package handlers

import (
	"context"

	"go.uber.org/zap"
)

// AddFriend sends or confirms a friend request from the session user.
func (f *Facade) AddFriend(ctx context.Context, session, friend string) error {
	return f.mutateAs(ctx, "add friend", session, func(login string) error {
		confirmed, err := f.net.Relationships.RequestFriend(login, friend)
		if err != nil {
			return err
		}
		if confirmed {
			f.log.Debug("friendship confirmed", zap.String("login", login), zap.String("friend", friend))
		}
		return nil
	})
}

// RemoveFriend ends a friendship of the session user.
func (f *Facade) RemoveFriend(ctx context.Context, session, friend string) error {
	return f.mutateAs(ctx, "remove friend", session, func(login string) error {
		return f.net.Relationships.RemoveFriend(login, friend)
	})
}

// IsFriend reports whether login and friend are confirmed friends.
func (f *Facade) IsFriend(login, friend string) (bool, error) {
	return f.check(func() (bool, error) { return f.net.Relationships.IsFriend(login, friend) })
}

// Friends lists the confirmed friends of login.
func (f *Facade) Friends(login string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Relationships.Friends(login) })
}

// PendingFriends lists the outstanding friend requests sent by login.
func (f *Facade) PendingFriends(login string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Relationships.PendingFriends(login) })
}

// AddCrush records a crush of the session user.
func (f *Facade) AddCrush(ctx context.Context, session, crush string) error {
	return f.mutateAs(ctx, "add crush", session, func(login string) error {
		return f.net.Relationships.AddCrush(login, crush)
	})
}

// IsCrush reports whether the session user has a crush on crush.
func (f *Facade) IsCrush(session, crush string) (bool, error) {
	return f.check(func() (bool, error) {
		login, err := f.net.Sessions.Resolve(session)
		if err != nil {
			return false, err
		}
		return f.net.Relationships.IsCrush(login, crush)
	})
}

// Crushes lists the crushes of the session user. Crushes are private, so
// they are only visible through a session.
func (f *Facade) Crushes(session string) ([]string, error) {
	return f.list(func() ([]string, error) {
		login, err := f.net.Sessions.Resolve(session)
		if err != nil {
			return nil, err
		}
		return f.net.Relationships.Crushes(login)
	})
}

// AddIdol makes the session user a fan of idol.
func (f *Facade) AddIdol(ctx context.Context, session, idol string) error {
	return f.mutateAs(ctx, "add idol", session, func(login string) error {
		return f.net.Relationships.AddIdol(login, idol)
	})
}

// IsFan reports whether login is a fan of idol.
func (f *Facade) IsFan(login, idol string) (bool, error) {
	return f.check(func() (bool, error) { return f.net.Relationships.IsFan(login, idol) })
}

// Fans lists the fans of login.
func (f *Facade) Fans(login string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Relationships.Fans(login) })
}

// Idols lists the idols of login.
func (f *Facade) Idols(login string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Relationships.Idols(login) })
}

// AddEnemy declares enemy an enemy of the session user.
func (f *Facade) AddEnemy(ctx context.Context, session, enemy string) error {
	return f.mutateAs(ctx, "add enemy", session, func(login string) error {
		return f.net.Relationships.AddEnemy(login, enemy)
	})
}

// IsEnemy reports whether login and other are enemies.
func (f *Facade) IsEnemy(login, other string) (bool, error) {
	return f.check(func() (bool, error) { return f.net.Relationships.IsEnemy(login, other) })
}

// Enemies lists the enemies of login.
func (f *Facade) Enemies(login string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Relationships.Enemies(login) })
}

func (f *Facade) check(fn func() (bool, error)) (bool, error) {
	var ok bool
	err := f.query(func() error {
		var err error
		ok, err = fn()
		return err
	})
	return ok, err
}

func (f *Facade) list(fn func() ([]string, error)) ([]string, error) {
	var out []string
	err := f.query(func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}
