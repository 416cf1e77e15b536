package services

import (
	"github.com/pkg/errors"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// Network wires the registries and the relationship engine over one shared
// in-memory graph.
type Network struct {
	Users         *UserRegistry
	Communities   *CommunityRegistry
	Sessions      *SessionService
	Relationships *RelationshipService
}

// NewNetwork builds a network from snap. A nil snapshot yields an empty network.
func NewNetwork(snap *entities.Snapshot) *Network {
	if snap == nil {
		snap = &entities.Snapshot{}
	}
	users := NewUserRegistry(snap.Users)
	communities := NewCommunityRegistry(users, snap.Communities)
	sessions := NewSessionService(users, snap.Sessions)
	return &Network{
		Users:         users,
		Communities:   communities,
		Sessions:      sessions,
		Relationships: NewRelationshipService(users, communities, sessions),
	}
}

// Snapshot returns a deep copy of the current state.
func (n *Network) Snapshot() *entities.Snapshot {
	snap := &entities.Snapshot{Sessions: n.Sessions.All()}
	for _, u := range n.Users.All() {
		snap.Users = append(snap.Users, u.Clone())
	}
	for _, c := range n.Communities.All() {
		snap.Communities = append(snap.Communities, c.Clone())
	}
	return snap
}

// Restore validates snap and replaces the whole state with a copy of it.
func (n *Network) Restore(snap *entities.Snapshot) error {
	if err := ValidateSnapshot(snap); err != nil {
		return err
	}

	users := make([]*entities.User, 0, len(snap.Users))
	for _, u := range snap.Users {
		users = append(users, u.Clone())
	}
	communities := make([]*entities.Community, 0, len(snap.Communities))
	for _, c := range snap.Communities {
		communities = append(communities, c.Clone())
	}

	n.Users.Replace(users)
	n.Communities.Replace(communities)
	n.Sessions.Replace(snap.Sessions)
	return nil
}

// Reset empties every registry and ends every session.
func (n *Network) Reset() {
	n.Sessions.Clear()
	n.Communities.Reset()
	n.Users.Reset()
}

// ValidateSnapshot checks that snap describes a graph the registries could
// have produced: logins and community names are unique, every cross reference
// resolves, symmetric relations are held on both sides, fan and idol indexes
// mirror each other and community membership matches the members' profiles.
func ValidateSnapshot(snap *entities.Snapshot) error {
	if snap == nil {
		return errors.New("snapshot is nil")
	}

	users := make(map[string]*entities.Profile, len(snap.Users))
	for _, u := range snap.Users {
		if u == nil || u.Login == "" {
			return errors.Wrap(entities.ErrInvalidIdentifier, "user without login")
		}
		if _, ok := users[u.Login]; ok {
			return errors.Wrapf(entities.ErrDuplicateAccount, "login %q", u.Login)
		}
		p := u.Profile
		if p == nil {
			p = entities.NewProfile()
		}
		users[u.Login] = p
	}

	communities := make(map[string]*entities.Community, len(snap.Communities))
	for _, c := range snap.Communities {
		if c == nil || c.Name == "" {
			return errors.Wrap(entities.ErrInvalidIdentifier, "community without name")
		}
		if _, ok := communities[c.Name]; ok {
			return errors.Wrapf(entities.ErrDuplicateCommunity, "community %q", c.Name)
		}
		communities[c.Name] = c
	}

	for _, u := range snap.Users {
		if err := validateProfile(u.Login, users[u.Login], users, communities); err != nil {
			return err
		}
	}
	for _, c := range snap.Communities {
		if err := validateCommunity(c, users); err != nil {
			return err
		}
	}
	return nil
}

// mirrored pairs each relation type with the set that must hold the reverse edge.
var mirrored = map[entities.RelationType]entities.RelationType{
	entities.RelationFriend: entities.RelationFriend,
	entities.RelationEnemy:  entities.RelationEnemy,
	entities.RelationIdol:   entities.RelationFan,
	entities.RelationFan:    entities.RelationIdol,
}

func validateProfile(login string, p *entities.Profile, users map[string]*entities.Profile, communities map[string]*entities.Community) error {
	for _, rel := range p.Relationships(login) {
		other, ok := users[rel.Target]
		if !ok {
			return errors.Wrapf(entities.ErrUserNotFound, "%s of %q: %q", rel.Type, login, rel.Target)
		}
		if rel.Target == login {
			return errors.Wrapf(entities.ErrSelfRelationship, "%s of %q", rel.Type, login)
		}
		if reverse, ok := mirrored[rel.Type]; ok && !other.Relations(reverse).Has(login) {
			return errors.Wrapf(entities.ErrInvalidIdentifier, "%s %q -> %q has no %s edge back", rel.Type, login, rel.Target, reverse)
		}
		if rel.Type == entities.RelationPending && p.Friends.Has(rel.Target) {
			return errors.Wrapf(entities.ErrInvalidIdentifier, "%q is both friend and pending of %q", rel.Target, login)
		}
	}

	for _, name := range p.MemberOf {
		c, ok := communities[name]
		if !ok {
			return errors.Wrapf(entities.ErrCommunityNotFound, "community %q of %q", name, login)
		}
		if !c.Members.Has(login) {
			return errors.Wrapf(entities.ErrInvalidIdentifier, "%q lists %q but is not a member", login, name)
		}
	}
	for _, name := range p.OwnerOf {
		c, ok := communities[name]
		if !ok {
			return errors.Wrapf(entities.ErrCommunityNotFound, "community %q of %q", name, login)
		}
		if c.Owner != login {
			return errors.Wrapf(entities.ErrInvalidIdentifier, "%q claims %q owned by %q", login, name, c.Owner)
		}
	}

	for _, n := range p.Notes {
		if _, ok := users[n.Sender]; !ok {
			return errors.Wrapf(entities.ErrUserNotFound, "sender %q of a note to %q", n.Sender, login)
		}
	}
	return nil
}

func validateCommunity(c *entities.Community, users map[string]*entities.Profile) error {
	owner, ok := users[c.Owner]
	if !ok {
		return errors.Wrapf(entities.ErrUserNotFound, "owner %q of community %q", c.Owner, c.Name)
	}
	if len(c.Members) == 0 || c.Members[0] != c.Owner {
		return errors.Wrapf(entities.ErrInvalidIdentifier, "owner %q is not the first member of %q", c.Owner, c.Name)
	}
	if !owner.OwnerOf.Has(c.Name) {
		return errors.Wrapf(entities.ErrInvalidIdentifier, "owner %q does not list %q", c.Owner, c.Name)
	}

	seen := make(map[string]bool, len(c.Members))
	for _, m := range c.Members {
		p, ok := users[m]
		if !ok {
			return errors.Wrapf(entities.ErrUserNotFound, "member %q of community %q", m, c.Name)
		}
		if seen[m] {
			return errors.Wrapf(entities.ErrInvalidIdentifier, "member %q listed twice in %q", m, c.Name)
		}
		seen[m] = true
		if !p.MemberOf.Has(c.Name) {
			return errors.Wrapf(entities.ErrInvalidIdentifier, "member %q of %q does not list it", m, c.Name)
		}
	}
	return nil
}
