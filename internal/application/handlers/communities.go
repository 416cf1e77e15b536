package handlers

import (
	"context"

	"go.uber.org/zap"
)

// CreateCommunity creates a community owned by the session user.
func (f *Facade) CreateCommunity(ctx context.Context, session, name, description string) error {
	return f.mutateAs(ctx, "create community", session, func(login string) error {
		if _, err := f.net.Communities.Create(login, name, description); err != nil {
			return err
		}
		f.log.Info("community created", zap.String("name", name), zap.String("owner", login))
		return nil
	})
}

// JoinCommunity adds the session user to community.
func (f *Facade) JoinCommunity(ctx context.Context, session, community string) error {
	return f.mutateAs(ctx, "join community", session, func(login string) error {
		return f.net.Communities.AddMember(login, community)
	})
}

// DescribeCommunity returns the description of community.
func (f *Facade) DescribeCommunity(name string) (string, error) {
	var desc string
	err := f.query(func() error {
		var err error
		desc, err = f.net.Communities.Describe(name)
		return err
	})
	return desc, err
}

// CommunityOwner returns the owner login of community.
func (f *Facade) CommunityOwner(name string) (string, error) {
	var owner string
	err := f.query(func() error {
		var err error
		owner, err = f.net.Communities.Owner(name)
		return err
	})
	return owner, err
}

// CommunityMembers lists the members of community, owner first.
func (f *Facade) CommunityMembers(name string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Communities.Members(name) })
}

// Memberships lists the communities login belongs to.
func (f *Facade) Memberships(login string) ([]string, error) {
	return f.list(func() ([]string, error) { return f.net.Communities.Memberships(login) })
}

// Communities lists every community name in creation order.
func (f *Facade) Communities() []string {
	var names []string
	_ = f.query(func() error {
		for _, c := range f.net.Communities.All() {
			names = append(names, c.Name)
		}
		return nil
	})
	return names
}
