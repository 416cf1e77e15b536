package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jackut/internal/domain/entities"
)

func TestRelationshipService_FriendHandshake(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob")
	rel := n.Relationships

	confirmed, err := rel.RequestFriend("alice", "bob")
	require.NoError(t, err)
	assert.False(t, confirmed)

	pending, err := rel.PendingFriends("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, pending)

	isFriend, err := rel.IsFriend("alice", "bob")
	require.NoError(t, err)
	assert.False(t, isFriend)

	_, err = rel.RequestFriend("alice", "bob")
	require.ErrorIs(t, err, entities.ErrFriendRequestPending)

	confirmed, err = rel.RequestFriend("bob", "alice")
	require.NoError(t, err)
	assert.True(t, confirmed)

	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		ok, err := rel.IsFriend(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok, "%s -> %s", pair[0], pair[1])

		pending, err := rel.PendingFriends(pair[0])
		require.NoError(t, err)
		assert.Empty(t, pending)
	}

	friends, err := rel.Friends("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, friends)

	_, err = rel.RequestFriend("alice", "bob")
	require.ErrorIs(t, err, entities.ErrAlreadyFriends)
	_, err = rel.RequestFriend("bob", "alice")
	require.ErrorIs(t, err, entities.ErrAlreadyFriends)
}

func TestRelationshipService_RemoveFriend(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob")
	rel := n.Relationships

	require.ErrorIs(t, rel.RemoveFriend("alice", "bob"), entities.ErrNotFriends)

	_, err := rel.RequestFriend("alice", "bob")
	require.NoError(t, err)
	require.ErrorIs(t, rel.RemoveFriend("alice", "bob"), entities.ErrNotFriends)

	_, err = rel.RequestFriend("bob", "alice")
	require.NoError(t, err)
	require.NoError(t, rel.RemoveFriend("bob", "alice"))

	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		ok, err := rel.IsFriend(pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, ok)
	}

	confirmed, err := rel.RequestFriend("alice", "bob")
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestRelationshipService_SelfRelationship(t *testing.T) {
	n := newTestNetwork(t, "alice")
	rel := n.Relationships

	_, err := rel.RequestFriend("alice", "alice")
	require.ErrorIs(t, err, entities.ErrSelfRelationship)
	require.ErrorIs(t, rel.AddEnemy("alice", "alice"), entities.ErrSelfRelationship)
	require.ErrorIs(t, rel.AddCrush("alice", "alice"), entities.ErrSelfRelationship)
	require.ErrorIs(t, rel.AddIdol("alice", "alice"), entities.ErrSelfRelationship)
	_, err = rel.SendNote("alice", "alice", "hi")
	require.ErrorIs(t, err, entities.ErrSelfRelationship)

	user, _ := n.Users.FindByLogin("alice")
	assert.Empty(t, user.Profile.Relationships("alice"))
	assert.Empty(t, user.Profile.Notes)
}

func TestRelationshipService_EnemyBlock(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob")
	rel := n.Relationships

	require.NoError(t, rel.AddEnemy("alice", "bob"))
	require.ErrorIs(t, rel.AddEnemy("alice", "bob"), entities.ErrAlreadyAdded)

	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		ok, err := rel.IsEnemy(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// Both directions are blocked regardless of who declared the enmity.
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		a, b := pair[0], pair[1]
		t.Run(fmt.Sprintf("%s to %s", a, b), func(t *testing.T) {
			_, err := rel.RequestFriend(a, b)
			require.ErrorIs(t, err, entities.ErrEnemyBlocked)
			require.ErrorIs(t, rel.AddCrush(a, b), entities.ErrEnemyBlocked)
			require.ErrorIs(t, rel.AddIdol(a, b), entities.ErrEnemyBlocked)
			_, err = rel.SendNote(a, b, "hi")
			require.ErrorIs(t, err, entities.ErrEnemyBlocked)
		})
	}

	enemies, err := rel.Enemies("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, enemies)

	bob, _ := n.Users.FindByLogin("bob")
	assert.Empty(t, bob.Profile.Notes)
	assert.Empty(t, bob.Profile.PendingFriends)
}

func TestRelationshipService_Crush(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob", "carol")
	rel := n.Relationships

	require.NoError(t, rel.AddCrush("alice", "bob"))
	require.ErrorIs(t, rel.AddCrush("alice", "bob"), entities.ErrAlreadyAdded)

	ok, err := rel.IsCrush("alice", "bob")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = rel.IsCrush("bob", "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	// One-way crush sends nothing.
	_, err = rel.ReadNote("bob")
	require.ErrorIs(t, err, entities.ErrEmptyQueue)

	require.NoError(t, rel.AddCrush("bob", "alice"))

	note, err := rel.ReadNote("alice")
	require.NoError(t, err)
	assert.True(t, note.System)
	assert.Equal(t, "bob", note.Sender)
	assert.Equal(t, "alice", note.Recipient)
	assert.Equal(t, "bob-name is your crush - Jackut note.", note.Text)

	note, err = rel.ReadNote("bob")
	require.NoError(t, err)
	assert.True(t, note.System)
	assert.Equal(t, "alice", note.Sender)
	assert.Equal(t, "alice-name is your crush - Jackut note.", note.Text)

	require.NoError(t, rel.AddCrush("alice", "carol"))
	crushes, err := rel.Crushes("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, crushes)
}

func TestRelationshipService_Idol(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob", "carol")
	rel := n.Relationships

	require.NoError(t, rel.AddIdol("bob", "alice"))
	require.NoError(t, rel.AddIdol("carol", "alice"))
	require.ErrorIs(t, rel.AddIdol("bob", "alice"), entities.ErrAlreadyAdded)

	fans, err := rel.Fans("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, fans)

	idols, err := rel.Idols("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, idols)

	ok, err := rel.IsFan("bob", "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = rel.IsFan("alice", "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRelationshipService_Notes(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob")
	rel := n.Relationships

	_, err := rel.ReadNote("bob")
	require.ErrorIs(t, err, entities.ErrEmptyQueue)

	for _, text := range []string{"first", "second", "third"} {
		note, err := rel.SendNote("alice", "bob", text)
		require.NoError(t, err)
		assert.NotEmpty(t, note.ID)
		assert.False(t, note.System)
	}

	for _, want := range []string{"first", "second", "third"} {
		note, err := rel.ReadNote("bob")
		require.NoError(t, err)
		assert.Equal(t, want, note.Text)
		assert.Equal(t, "alice", note.Sender)
	}

	_, err = rel.ReadNote("bob")
	require.ErrorIs(t, err, entities.ErrEmptyQueue)

	_, err = rel.SendNote("alice", "ghost", "hi")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestRelationshipService_UnknownUsers(t *testing.T) {
	n := newTestNetwork(t, "alice")
	rel := n.Relationships

	_, err := rel.RequestFriend("alice", "ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	_, err = rel.IsFriend("ghost", "alice")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	require.ErrorIs(t, rel.AddEnemy("alice", "ghost"), entities.ErrUserNotFound)
	_, err = rel.Friends("ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	_, err = rel.ReadNote("ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}
