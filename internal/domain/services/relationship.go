package services

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// crushNoteFormat is the text of the note each party receives when a crush
// becomes mutual. The argument is the counterpart's display name.
const crushNoteFormat = "%s is your crush - Jackut note."

// SessionTracker ends the sessions of a login. It is satisfied by SessionService.
type SessionTracker interface {
	Forget(login string) int
}

// RelationshipService enforces the social-graph rules between users:
// the friendship handshake, crush, idol and enemy edges, direct notes and
// the teardown of deleted accounts.
type RelationshipService struct {
	users       *UserRegistry
	communities *CommunityRegistry
	sessions    SessionTracker
}

// NewRelationshipService creates a new RelationshipService.
func NewRelationshipService(
	users *UserRegistry,
	communities *CommunityRegistry,
	sessions SessionTracker,
) *RelationshipService {
	return &RelationshipService{
		users:       users,
		communities: communities,
		sessions:    sessions,
	}
}

// resolvePair looks up both users of a binary relation.
func (s *RelationshipService) resolvePair(a, b string) (*entities.User, *entities.User, error) {
	ua, err := s.users.FindByLogin(a)
	if err != nil {
		return nil, nil, err
	}
	ub, err := s.users.FindByLogin(b)
	if err != nil {
		return nil, nil, err
	}
	return ua, ub, nil
}

// enemies reports whether either user declared the other an enemy.
func enemies(a, b *entities.User) bool {
	return a.Profile.Enemies.Has(b.Login) || b.Profile.Enemies.Has(a.Login)
}

// RequestFriend asks target to become requester's friend. When target has
// already asked requester, the friendship is confirmed on both sides and the
// method returns true.
func (s *RelationshipService) RequestFriend(requester, target string) (bool, error) {
	from, to, err := s.resolvePair(requester, target)
	if err != nil {
		return false, err
	}

	switch {
	case from.Login == to.Login:
		return false, errors.Wrapf(entities.ErrSelfRelationship, "friend %q", requester)
	case enemies(from, to):
		return false, errors.Wrapf(entities.ErrEnemyBlocked, "friend %q -> %q", requester, target)
	case from.Profile.PendingFriends.Has(to.Login):
		return false, errors.Wrapf(entities.ErrFriendRequestPending, "friend %q -> %q", requester, target)
	case from.Profile.Friends.Has(to.Login):
		return false, errors.Wrapf(entities.ErrAlreadyFriends, "friend %q -> %q", requester, target)
	}

	if to.Profile.PendingFriends.Has(from.Login) {
		from.Profile.Friends.Add(to.Login)
		to.Profile.Friends.Add(from.Login)
		to.Profile.PendingFriends.Remove(from.Login)
		from.Profile.PendingFriends.Remove(to.Login)
		return true, nil
	}

	from.Profile.PendingFriends.Add(to.Login)
	return false, nil
}

// RemoveFriend ends a confirmed friendship on both sides.
func (s *RelationshipService) RemoveFriend(a, b string) error {
	ua, ub, err := s.resolvePair(a, b)
	if err != nil {
		return err
	}
	if !ua.Profile.Friends.Has(ub.Login) {
		return errors.Wrapf(entities.ErrNotFriends, "%q and %q", a, b)
	}
	ua.Profile.Friends.Remove(ub.Login)
	ub.Profile.Friends.Remove(ua.Login)
	return nil
}

// IsFriend reports whether a and b are confirmed friends.
func (s *RelationshipService) IsFriend(a, b string) (bool, error) {
	ua, ub, err := s.resolvePair(a, b)
	if err != nil {
		return false, err
	}
	return ua.Profile.Friends.Has(ub.Login), nil
}

// Friends lists the confirmed friends of login.
func (s *RelationshipService) Friends(login string) ([]string, error) {
	return s.list(login, entities.RelationFriend)
}

// PendingFriends lists the users login has asked to befriend.
func (s *RelationshipService) PendingFriends(login string) ([]string, error) {
	return s.list(login, entities.RelationPending)
}

// AddCrush records that user has a crush on target. When target already has
// a crush on user, both receive a system note naming the other.
func (s *RelationshipService) AddCrush(user, target string) error {
	from, to, err := s.resolvePair(user, target)
	if err != nil {
		return err
	}

	switch {
	case from.Login == to.Login:
		return errors.Wrapf(entities.ErrSelfRelationship, "crush %q", user)
	case enemies(from, to):
		return errors.Wrapf(entities.ErrEnemyBlocked, "crush %q -> %q", user, target)
	case from.Profile.Crushes.Has(to.Login):
		return errors.Wrapf(entities.ErrAlreadyAdded, "crush %q -> %q", user, target)
	}

	from.Profile.Crushes.Add(to.Login)

	if to.Profile.Crushes.Has(from.Login) {
		deliverNote(to, from, fmt.Sprintf(crushNoteFormat, to.Name), true)
		deliverNote(from, to, fmt.Sprintf(crushNoteFormat, from.Name), true)
	}
	return nil
}

// IsCrush reports whether user has a crush on target.
func (s *RelationshipService) IsCrush(user, target string) (bool, error) {
	from, to, err := s.resolvePair(user, target)
	if err != nil {
		return false, err
	}
	return from.Profile.Crushes.Has(to.Login), nil
}

// Crushes lists the users login has a crush on.
func (s *RelationshipService) Crushes(login string) ([]string, error) {
	return s.list(login, entities.RelationCrush)
}

// AddIdol makes fan a fan of idol, updating both indexes of the edge.
func (s *RelationshipService) AddIdol(fan, idol string) error {
	f, i, err := s.resolvePair(fan, idol)
	if err != nil {
		return err
	}

	switch {
	case f.Login == i.Login:
		return errors.Wrapf(entities.ErrSelfRelationship, "idol %q", fan)
	case enemies(f, i):
		return errors.Wrapf(entities.ErrEnemyBlocked, "idol %q -> %q", fan, idol)
	case f.Profile.Idols.Has(i.Login):
		return errors.Wrapf(entities.ErrAlreadyAdded, "idol %q -> %q", fan, idol)
	}

	f.Profile.Idols.Add(i.Login)
	i.Profile.Fans.Add(f.Login)
	return nil
}

// IsFan reports whether fan is a fan of idol.
func (s *RelationshipService) IsFan(fan, idol string) (bool, error) {
	f, i, err := s.resolvePair(fan, idol)
	if err != nil {
		return false, err
	}
	return i.Profile.Fans.Has(f.Login), nil
}

// Fans lists the fans of login.
func (s *RelationshipService) Fans(login string) ([]string, error) {
	return s.list(login, entities.RelationFan)
}

// Idols lists the idols of login.
func (s *RelationshipService) Idols(login string) ([]string, error) {
	return s.list(login, entities.RelationIdol)
}

// AddEnemy declares target an enemy of user. The relation is symmetric.
func (s *RelationshipService) AddEnemy(user, target string) error {
	from, to, err := s.resolvePair(user, target)
	if err != nil {
		return err
	}

	switch {
	case from.Login == to.Login:
		return errors.Wrapf(entities.ErrSelfRelationship, "enemy %q", user)
	case from.Profile.Enemies.Has(to.Login):
		return errors.Wrapf(entities.ErrAlreadyAdded, "enemy %q -> %q", user, target)
	}

	from.Profile.Enemies.Add(to.Login)
	to.Profile.Enemies.Add(from.Login)
	return nil
}

// IsEnemy reports whether a and b are enemies.
func (s *RelationshipService) IsEnemy(a, b string) (bool, error) {
	ua, ub, err := s.resolvePair(a, b)
	if err != nil {
		return false, err
	}
	return enemies(ua, ub), nil
}

// Enemies lists the enemies of login.
func (s *RelationshipService) Enemies(login string) ([]string, error) {
	return s.list(login, entities.RelationEnemy)
}

// SendNote queues a direct note from sender to recipient.
func (s *RelationshipService) SendNote(sender, recipient, text string) (entities.Note, error) {
	if sender == recipient {
		return entities.Note{}, errors.Wrapf(entities.ErrSelfRelationship, "note %q", sender)
	}

	from, to, err := s.resolvePair(sender, recipient)
	if err != nil {
		return entities.Note{}, err
	}
	if enemies(from, to) {
		return entities.Note{}, errors.Wrapf(entities.ErrEnemyBlocked, "note %q -> %q", sender, recipient)
	}

	return deliverNote(from, to, text, false), nil
}

// ReadNote dequeues the oldest note received by login.
func (s *RelationshipService) ReadNote(login string) (entities.Note, error) {
	u, err := s.users.FindByLogin(login)
	if err != nil {
		return entities.Note{}, err
	}
	n, ok := u.Profile.PopNote()
	if !ok {
		return entities.Note{}, errors.Wrapf(entities.ErrEmptyQueue, "notes of %q", login)
	}
	return n, nil
}

func (s *RelationshipService) list(login string, t entities.RelationType) ([]string, error) {
	u, err := s.users.FindByLogin(login)
	if err != nil {
		return nil, err
	}
	return u.Profile.Relations(t).Values(), nil
}

// deliverNote enqueues a note without any rule checks.
func deliverNote(from, to *entities.User, text string, system bool) entities.Note {
	n := entities.Note{
		ID:        newID(),
		Sender:    from.Login,
		Recipient: to.Login,
		Text:      text,
		System:    system,
		SentAt:    timeNow(),
	}
	to.Profile.PushNote(n)
	return n
}
