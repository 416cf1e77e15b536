package entities

import (
	"maps"
	"slices"
	"time"
)

// User is a registered account. Login is the identity and never changes.
type User struct {
	Login     string    `json:"login" yaml:"login"`
	Name      string    `json:"name" yaml:"name"`
	Password  string    `json:"password" yaml:"password"`
	Profile   *Profile  `json:"profile" yaml:"profile"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewUser creates a user with an empty profile.
func NewUser(login, name, password string, now time.Time) *User {
	return &User{
		Login:     login,
		Name:      name,
		Password:  password,
		Profile:   NewProfile(),
		CreatedAt: now,
	}
}

// CheckPassword reports whether password matches the stored credential.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

// Clone returns a deep copy of the user and its profile.
func (u *User) Clone() *User {
	cp := *u
	if u.Profile != nil {
		cp.Profile = u.Profile.Clone()
	}
	return &cp
}

// Profile is the mutable state owned by a single user. Every set holds
// logins, except MemberOf and OwnerOf which hold community names.
type Profile struct {
	Attributes     map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Friends        Set               `json:"friends,omitempty" yaml:"friends,omitempty"`
	PendingFriends Set               `json:"pending_friends,omitempty" yaml:"pending_friends,omitempty"`
	Enemies        Set               `json:"enemies,omitempty" yaml:"enemies,omitempty"`
	Crushes        Set               `json:"crushes,omitempty" yaml:"crushes,omitempty"`
	Idols          Set               `json:"idols,omitempty" yaml:"idols,omitempty"`
	Fans           Set               `json:"fans,omitempty" yaml:"fans,omitempty"`
	Notes          []Note            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Broadcasts     []Broadcast       `json:"broadcasts,omitempty" yaml:"broadcasts,omitempty"`
	MemberOf       Set               `json:"member_of,omitempty" yaml:"member_of,omitempty"`
	OwnerOf        Set               `json:"owner_of,omitempty" yaml:"owner_of,omitempty"`
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{Attributes: make(map[string]string)}
}

// Attribute returns the value stored under key.
func (p *Profile) Attribute(key string) (string, bool) {
	v, ok := p.Attributes[key]
	return v, ok
}

// SetAttribute stores value under key.
func (p *Profile) SetAttribute(key, value string) {
	if p.Attributes == nil {
		p.Attributes = make(map[string]string)
	}
	p.Attributes[key] = value
}

// PushNote appends n to the inbound note queue.
func (p *Profile) PushNote(n Note) {
	p.Notes = append(p.Notes, n)
}

// PopNote removes and returns the oldest note.
func (p *Profile) PopNote() (Note, bool) {
	if len(p.Notes) == 0 {
		return Note{}, false
	}
	n := p.Notes[0]
	p.Notes = slices.Delete(p.Notes, 0, 1)
	return n, true
}

// RemoveNotesFrom drops every queued note sent by sender and returns how
// many were removed.
func (p *Profile) RemoveNotesFrom(sender string) int {
	before := len(p.Notes)
	p.Notes = slices.DeleteFunc(p.Notes, func(n Note) bool {
		return n.Sender == sender
	})
	return before - len(p.Notes)
}

// PushBroadcast appends b to the inbound broadcast queue.
func (p *Profile) PushBroadcast(b Broadcast) {
	p.Broadcasts = append(p.Broadcasts, b)
}

// PopBroadcast removes and returns the oldest broadcast.
func (p *Profile) PopBroadcast() (Broadcast, bool) {
	if len(p.Broadcasts) == 0 {
		return Broadcast{}, false
	}
	b := p.Broadcasts[0]
	p.Broadcasts = slices.Delete(p.Broadcasts, 0, 1)
	return b, true
}

// Clear empties every set, queue and attribute of the profile.
func (p *Profile) Clear() {
	*p = Profile{Attributes: make(map[string]string)}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	return &Profile{
		Attributes:     maps.Clone(p.Attributes),
		Friends:        slices.Clone(p.Friends),
		PendingFriends: slices.Clone(p.PendingFriends),
		Enemies:        slices.Clone(p.Enemies),
		Crushes:        slices.Clone(p.Crushes),
		Idols:          slices.Clone(p.Idols),
		Fans:           slices.Clone(p.Fans),
		Notes:          slices.Clone(p.Notes),
		Broadcasts:     slices.Clone(p.Broadcasts),
		MemberOf:       slices.Clone(p.MemberOf),
		OwnerOf:        slices.Clone(p.OwnerOf),
	}
}

// Relations returns the set holding relations of type t, or nil for an
// unknown type.
func (p *Profile) Relations(t RelationType) *Set {
	switch t {
	case RelationFriend:
		return &p.Friends
	case RelationPending:
		return &p.PendingFriends
	case RelationEnemy:
		return &p.Enemies
	case RelationCrush:
		return &p.Crushes
	case RelationIdol:
		return &p.Idols
	case RelationFan:
		return &p.Fans
	default:
		return nil
	}
}

// Relationships flattens the profile's relation sets into storage rows,
// with owner as the source of every row.
func (p *Profile) Relationships(owner string) []Relationship {
	var rels []Relationship
	for _, t := range RelationTypes {
		for i, target := range *p.Relations(t) {
			rels = append(rels, Relationship{Source: owner, Target: target, Type: t, Position: i})
		}
	}
	return rels
}

// Link adds rel.Target to the set for rel.Type. It reports false for an
// unknown relation type.
func (p *Profile) Link(rel Relationship) bool {
	set := p.Relations(rel.Type)
	if set == nil {
		return false
	}
	set.Add(rel.Target)
	return true
}
