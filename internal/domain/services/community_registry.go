package services

import (
	"github.com/pkg/errors"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// CommunityRegistry holds communities and keeps membership mirrored on both
// the community member list and each member's profile.
type CommunityRegistry struct {
	users       *UserRegistry
	communities []*entities.Community
	index       map[string]*entities.Community
}

// NewCommunityRegistry creates a registry over users seeded with communities.
func NewCommunityRegistry(users *UserRegistry, communities []*entities.Community) *CommunityRegistry {
	r := &CommunityRegistry{users: users}
	r.Replace(communities)
	return r
}

// Replace discards the current communities and installs communities instead.
func (r *CommunityRegistry) Replace(communities []*entities.Community) {
	r.communities = make([]*entities.Community, 0, len(communities))
	r.index = make(map[string]*entities.Community, len(communities))
	for _, c := range communities {
		if c == nil {
			continue
		}
		r.communities = append(r.communities, c)
		r.index[c.Name] = c
	}
}

// Find resolves a community by name.
func (r *CommunityRegistry) Find(name string) (*entities.Community, error) {
	c, ok := r.index[name]
	if !ok {
		return nil, errors.Wrapf(entities.ErrCommunityNotFound, "community %q", name)
	}
	return c, nil
}

// Create registers a community owned by ownerLogin, who becomes its only member.
func (r *CommunityRegistry) Create(ownerLogin, name, description string) (*entities.Community, error) {
	owner, err := r.users.FindByLogin(ownerLogin)
	if err != nil {
		return nil, err
	}
	if _, ok := r.index[name]; ok {
		return nil, errors.Wrapf(entities.ErrDuplicateCommunity, "community %q", name)
	}

	c := entities.NewCommunity(name, description, owner.Login, timeNow())
	r.communities = append(r.communities, c)
	r.index[name] = c

	owner.Profile.OwnerOf.Add(name)
	owner.Profile.MemberOf.Add(name)
	return c, nil
}

// AddMember joins login to the named community.
func (r *CommunityRegistry) AddMember(login, name string) error {
	u, err := r.users.FindByLogin(login)
	if err != nil {
		return err
	}
	c, err := r.Find(name)
	if err != nil {
		return err
	}

	if c.Members.Has(u.Login) || u.Profile.MemberOf.Has(name) {
		return errors.Wrapf(entities.ErrAlreadyMember, "%q in %q", login, name)
	}

	c.Members.Add(u.Login)
	u.Profile.MemberOf.Add(name)
	return nil
}

// Broadcast delivers text to the queue of every current member, the sender
// included when it is a member.
func (r *CommunityRegistry) Broadcast(senderLogin, name, text string) (entities.Broadcast, error) {
	sender, err := r.users.FindByLogin(senderLogin)
	if err != nil {
		return entities.Broadcast{}, err
	}
	c, err := r.Find(name)
	if err != nil {
		return entities.Broadcast{}, err
	}

	b := entities.Broadcast{
		ID:        newID(),
		Sender:    sender.Login,
		Community: c.Name,
		Text:      text,
		SentAt:    timeNow(),
	}
	for _, login := range c.Members {
		member, err := r.users.FindByLogin(login)
		if err != nil {
			continue
		}
		member.Profile.PushBroadcast(b)
	}
	return b, nil
}

// ReadBroadcast dequeues the oldest broadcast received by login.
func (r *CommunityRegistry) ReadBroadcast(login string) (entities.Broadcast, error) {
	u, err := r.users.FindByLogin(login)
	if err != nil {
		return entities.Broadcast{}, err
	}
	b, ok := u.Profile.PopBroadcast()
	if !ok {
		return entities.Broadcast{}, errors.Wrapf(entities.ErrEmptyQueue, "broadcasts of %q", login)
	}
	return b, nil
}

// Describe returns the community description.
func (r *CommunityRegistry) Describe(name string) (string, error) {
	c, err := r.Find(name)
	if err != nil {
		return "", err
	}
	return c.Description, nil
}

// Owner returns the owner login.
func (r *CommunityRegistry) Owner(name string) (string, error) {
	c, err := r.Find(name)
	if err != nil {
		return "", err
	}
	return c.Owner, nil
}

// Members returns the member logins, owner first.
func (r *CommunityRegistry) Members(name string) ([]string, error) {
	c, err := r.Find(name)
	if err != nil {
		return nil, err
	}
	return c.Members.Values(), nil
}

// Memberships returns the names of the communities login belongs to.
func (r *CommunityRegistry) Memberships(login string) ([]string, error) {
	u, err := r.users.FindByLogin(login)
	if err != nil {
		return nil, err
	}
	return u.Profile.MemberOf.Values(), nil
}

// Leave removes login from the member list of the named community. The
// user's own MemberOf entry is left for the caller.
func (r *CommunityRegistry) Leave(login, name string) {
	if c, ok := r.index[name]; ok {
		c.Members.Remove(login)
	}
}

// DeleteOwnedBy deletes every community owned by login after detaching all of
// its members. It returns the names of the deleted communities.
func (r *CommunityRegistry) DeleteOwnedBy(login string) ([]string, error) {
	owner, err := r.users.FindByLogin(login)
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, name := range owner.Profile.OwnerOf.Values() {
		c, ok := r.index[name]
		if !ok {
			owner.Profile.OwnerOf.Remove(name)
			continue
		}
		for _, memberLogin := range c.Members.Values() {
			if member, err := r.users.FindByLogin(memberLogin); err == nil {
				member.Profile.MemberOf.Remove(name)
			}
			c.Members.Remove(memberLogin)
		}
		r.remove(c)
		owner.Profile.OwnerOf.Remove(name)
		deleted = append(deleted, name)
	}
	return deleted, nil
}

func (r *CommunityRegistry) remove(c *entities.Community) {
	delete(r.index, c.Name)
	for i, existing := range r.communities {
		if existing == c {
			r.communities = append(r.communities[:i], r.communities[i+1:]...)
			return
		}
	}
}

// All returns the communities in creation order.
func (r *CommunityRegistry) All() []*entities.Community {
	out := make([]*entities.Community, len(r.communities))
	copy(out, r.communities)
	return out
}

// Len returns the number of communities.
func (r *CommunityRegistry) Len() int {
	return len(r.communities)
}

// Reset removes every community.
func (r *CommunityRegistry) Reset() {
	r.Replace(nil)
}
