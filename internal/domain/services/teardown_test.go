package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// buildGraph links "x" to every other user through every relation type.
func buildGraph(t *testing.T) *Network {
	t.Helper()
	n := newTestNetwork(t, "x", "friend", "enemy", "idol", "fan", "crush", "admirer", "pending", "member")
	rel := n.Relationships

	_, err := rel.RequestFriend("x", "friend")
	require.NoError(t, err)
	_, err = rel.RequestFriend("friend", "x")
	require.NoError(t, err)

	require.NoError(t, rel.AddEnemy("x", "enemy"))
	require.NoError(t, rel.AddIdol("x", "idol"))
	require.NoError(t, rel.AddIdol("fan", "x"))
	require.NoError(t, rel.AddCrush("x", "crush"))
	require.NoError(t, rel.AddCrush("admirer", "x"))

	_, err = rel.RequestFriend("pending", "x")
	require.NoError(t, err)

	_, err = n.Communities.Create("x", "Owned", "")
	require.NoError(t, err)
	require.NoError(t, n.Communities.AddMember("member", "Owned"))
	_, err = n.Communities.Create("member", "Joined", "")
	require.NoError(t, err)
	require.NoError(t, n.Communities.AddMember("x", "Joined"))

	_, err = rel.SendNote("x", "member", "from x")
	require.NoError(t, err)
	_, err = rel.SendNote("friend", "member", "from friend")
	require.NoError(t, err)

	_, err = n.Sessions.Open("x", "pw")
	require.NoError(t, err)
	return n
}

func TestRelationshipService_DeleteUser(t *testing.T) {
	n := buildGraph(t)

	report, err := n.Relationships.DeleteUser("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"Owned"}, report.DeletedCommunities)
	assert.Equal(t, 1, report.PurgedNotes)
	assert.Equal(t, 1, report.ClosedSessions)

	t.Run("user is gone", func(t *testing.T) {
		_, err := n.Users.FindByLogin("x")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Empty(t, n.Sessions.All())
	})

	t.Run("no relation points at the deleted login", func(t *testing.T) {
		for _, u := range n.Users.All() {
			for _, rel := range u.Profile.Relationships(u.Login) {
				assert.NotEqual(t, "x", rel.Target, "%s still has %s edge to x", u.Login, rel.Type)
			}
		}
	})

	t.Run("joined community no longer lists the user", func(t *testing.T) {
		members, err := n.Communities.Members("Joined")
		require.NoError(t, err)
		assert.Equal(t, []string{"member"}, members)
	})

	t.Run("owned community is deleted", func(t *testing.T) {
		_, err := n.Communities.Find("Owned")
		require.ErrorIs(t, err, entities.ErrCommunityNotFound)

		memberships, err := n.Communities.Memberships("member")
		require.NoError(t, err)
		assert.Equal(t, []string{"Joined"}, memberships)
	})

	t.Run("notes sent by the user are purged", func(t *testing.T) {
		note, err := n.Relationships.ReadNote("member")
		require.NoError(t, err)
		assert.Equal(t, "from friend", note.Text)

		_, err = n.Relationships.ReadNote("member")
		require.ErrorIs(t, err, entities.ErrEmptyQueue)
	})

	t.Run("login can be registered again with a clean graph", func(t *testing.T) {
		_, err := n.Users.Register("X again", "pw", "x")
		require.NoError(t, err)

		confirmed, err := n.Relationships.RequestFriend("x", "pending")
		require.NoError(t, err)
		assert.False(t, confirmed)
	})
}

func TestRelationshipService_DeleteUserFriendCleanup(t *testing.T) {
	// Friends keep their other friendships; only the deleted login is removed.
	n := newTestNetwork(t, "alice", "bob", "carol")
	rel := n.Relationships
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}, {"bob", "carol"}, {"carol", "bob"}} {
		_, err := rel.RequestFriend(pair[0], pair[1])
		require.NoError(t, err)
	}

	_, err := rel.DeleteUser("alice")
	require.NoError(t, err)

	friends, err := rel.Friends("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"carol"}, friends)
}

func TestRelationshipService_DeleteUserNotFound(t *testing.T) {
	n := newTestNetwork(t, "alice")

	_, err := n.Relationships.DeleteUser("ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	assert.Equal(t, 1, n.Users.Len())
}

func TestScenarios(t *testing.T) {
	t.Run("handshake", func(t *testing.T) {
		n := NewNetwork(nil)
		_, err := n.Users.Register("Alice", "pw", "alice")
		require.NoError(t, err)
		_, err = n.Users.Register("Bob", "pw", "bob")
		require.NoError(t, err)

		_, err = n.Relationships.RequestFriend("alice", "bob")
		require.NoError(t, err)
		_, err = n.Relationships.RequestFriend("bob", "alice")
		require.NoError(t, err)

		ok, err := n.Relationships.IsFriend("alice", "bob")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("enemy blocks friendship", func(t *testing.T) {
		n := newTestNetwork(t, "alice", "bob")
		require.NoError(t, n.Relationships.AddEnemy("alice", "bob"))
		_, err := n.Relationships.RequestFriend("alice", "bob")
		require.ErrorIs(t, err, entities.ErrEnemyBlocked)
	})

	t.Run("community broadcast", func(t *testing.T) {
		n := newTestNetwork(t, "alice", "bob")
		_, err := n.Communities.Create("alice", "Go Fans", "We love Go")
		require.NoError(t, err)
		require.NoError(t, n.Communities.AddMember("bob", "Go Fans"))
		_, err = n.Communities.Broadcast("alice", "Go Fans", "Hello")
		require.NoError(t, err)

		b, err := n.Communities.ReadBroadcast("bob")
		require.NoError(t, err)
		assert.Equal(t, "Hello", b.Text)

		_, err = n.Communities.ReadBroadcast("bob")
		require.ErrorIs(t, err, entities.ErrEmptyQueue)
	})

	t.Run("orphaned note purged", func(t *testing.T) {
		n := newTestNetwork(t, "alice", "bob")
		_, err := n.Relationships.SendNote("alice", "bob", "hi")
		require.NoError(t, err)
		_, err = n.Relationships.DeleteUser("alice")
		require.NoError(t, err)

		_, err = n.Relationships.ReadNote("bob")
		require.ErrorIs(t, err, entities.ErrEmptyQueue)
	})

	t.Run("fans", func(t *testing.T) {
		n := newTestNetwork(t, "alice", "bob")
		require.NoError(t, n.Relationships.AddIdol("bob", "alice"))

		fans, err := n.Relationships.Fans("alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"bob"}, fans)
	})
}
