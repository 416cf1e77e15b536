package entities

import (
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set

	assert.True(t, s.Add("alice"))
	assert.True(t, s.Add("bob"))
	assert.False(t, s.Add("alice"), "duplicates are rejected")
	assert.Equal(t, []string{"alice", "bob"}, s.Values())

	assert.True(t, s.Remove("alice"))
	assert.False(t, s.Remove("alice"))
	assert.Equal(t, []string{"bob"}, s.Values())
	assert.True(t, s.Has("bob"))
	assert.False(t, s.Has("alice"))
}

func TestSet_ValuesNeverNil(t *testing.T) {
	var s Set
	assert.NotNil(t, s.Values())
	assert.Empty(t, s.Values())
}

func TestProfile_NoteQueueIsFIFO(t *testing.T) {
	p := NewProfile()
	p.PushNote(Note{Sender: "a", Text: "first"})
	p.PushNote(Note{Sender: "b", Text: "second"})

	n, ok := p.PopNote()
	require.True(t, ok)
	assert.Equal(t, "first", n.Text)

	n, ok = p.PopNote()
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)

	_, ok = p.PopNote()
	assert.False(t, ok)
}

func TestProfile_RemoveNotesFrom(t *testing.T) {
	p := NewProfile()
	p.PushNote(Note{Sender: "a", Text: "1"})
	p.PushNote(Note{Sender: "b", Text: "2"})
	p.PushNote(Note{Sender: "a", Text: "3"})

	assert.Equal(t, 2, p.RemoveNotesFrom("a"))
	require.Len(t, p.Notes, 1)
	assert.Equal(t, "2", p.Notes[0].Text)
}

func TestProfile_BroadcastQueueIsFIFO(t *testing.T) {
	p := NewProfile()
	p.PushBroadcast(Broadcast{Text: "hello"})
	p.PushBroadcast(Broadcast{Text: "world"})

	b, ok := p.PopBroadcast()
	require.True(t, ok)
	assert.Equal(t, "hello", b.Text)
	b, ok = p.PopBroadcast()
	require.True(t, ok)
	assert.Equal(t, "world", b.Text)
	_, ok = p.PopBroadcast()
	assert.False(t, ok)
}

func TestProfile_RelationshipsRoundTrip(t *testing.T) {
	p := NewProfile()
	p.Friends.Add("bob")
	p.Friends.Add("carol")
	p.Enemies.Add("dave")
	p.Fans.Add("erin")

	rels := p.Relationships("alice")
	require.Len(t, rels, 4)
	assert.Equal(t, Relationship{Source: "alice", Target: "carol", Type: RelationFriend, Position: 1}, rels[1])

	restored := NewProfile()
	for _, rel := range rels {
		require.True(t, restored.Link(rel))
	}
	assert.Equal(t, p.Friends, restored.Friends)
	assert.Equal(t, p.Enemies, restored.Enemies)
	assert.Equal(t, p.Fans, restored.Fans)

	assert.False(t, restored.Link(Relationship{Type: "unknown"}))
}

func TestProfile_Clear(t *testing.T) {
	p := NewProfile()
	p.SetAttribute("city", "Maceió")
	p.Friends.Add("bob")
	p.PushNote(Note{Text: "x"})
	p.MemberOf.Add("Go")

	p.Clear()

	assert.Empty(t, p.Attributes)
	assert.Empty(t, p.Friends)
	assert.Empty(t, p.Notes)
	assert.Empty(t, p.MemberOf)
}

func TestUser_CloneIsDeep(t *testing.T) {
	u := NewUser("alice", "Alice", "pw", time.Now())
	u.Profile.Friends.Add("bob")
	u.Profile.SetAttribute("city", "Recife")

	cp := u.Clone()
	cp.Profile.Friends.Add("carol")
	cp.Profile.SetAttribute("city", "Natal")

	assert.Equal(t, Set{"bob"}, u.Profile.Friends)
	v, _ := u.Profile.Attribute("city")
	assert.Equal(t, "Recife", v)
}

func TestCommunity_OwnerIsFirstMember(t *testing.T) {
	c := NewCommunity("Go Fans", "We love Go", "alice", time.Now())
	assert.Equal(t, Set{"alice"}, c.Members)

	cp := c.Clone()
	cp.Members.Add("bob")
	assert.Equal(t, Set{"alice"}, c.Members)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"sentinel", ErrEnemyBlocked, "EnemyBlocked"},
		{"wrapped with pkg/errors", errors.Wrapf(ErrUserNotFound, "login %q", "x"), "UserNotFound"},
		{"wrapped with fmt", fmt.Errorf("outer: %w", ErrEmptyQueue), "EmptyQueue"},
		{"foreign", fmt.Errorf("disk full"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
	assert.Len(t, ErrorKinds(), 17)
}
