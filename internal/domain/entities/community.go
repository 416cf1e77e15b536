package entities

import "time"

// Community is a named group with an immutable owner. The owner is always
// the first member.
type Community struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Owner       string    `json:"owner" yaml:"owner"`
	Members     Set       `json:"members" yaml:"members"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// NewCommunity creates a community whose only member is its owner.
func NewCommunity(name, description, owner string, now time.Time) *Community {
	return &Community{
		Name:        name,
		Description: description,
		Owner:       owner,
		Members:     Set{owner},
		CreatedAt:   now,
	}
}

// Clone returns a deep copy of the community.
func (c *Community) Clone() *Community {
	cp := *c
	cp.Members = c.Members.Values()
	return &cp
}
