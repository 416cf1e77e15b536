package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jackut/internal/domain/entities"
)

func TestUserRegistry_Register(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		password string
		login    string
		wantErr  error
	}{
		{name: "valid", userName: "Carol", password: "pw", login: "carol"},
		{name: "empty login", userName: "Carol", password: "pw", login: "", wantErr: entities.ErrInvalidIdentifier},
		{name: "empty name", userName: "", password: "pw", login: "carol", wantErr: entities.ErrInvalidIdentifier},
		{name: "empty password", userName: "Carol", password: "", login: "carol", wantErr: entities.ErrInvalidCredential},
		{name: "identifier wins over credential", userName: "Carol", password: "", login: "", wantErr: entities.ErrInvalidIdentifier},
		{name: "login taken", userName: "Other", password: "pw", login: "alice", wantErr: entities.ErrDuplicateAccount},
		{name: "name equals existing login", userName: "alice", password: "pw", login: "zed", wantErr: entities.ErrDuplicateAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := fixedNow(t)
			n := newTestNetwork(t, "alice")

			u, err := n.Users.Register(tt.userName, tt.password, tt.login)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				assert.Equal(t, 1, n.Users.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.login, u.Login)
			assert.Equal(t, tt.userName, u.Name)
			assert.Equal(t, now, u.CreatedAt)
			assert.Empty(t, u.Profile.Friends)
			assert.Equal(t, 2, n.Users.Len())
		})
	}
}

func TestUserRegistry_FindAndRemove(t *testing.T) {
	n := newTestNetwork(t, "alice", "bob")

	u, err := n.Users.FindByLogin("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob-name", u.Name)

	_, err = n.Users.FindByLogin("nobody")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	n.Users.Remove(u)
	assert.False(t, n.Users.Exists("bob"))
	assert.Equal(t, 1, n.Users.Len())
	assert.Equal(t, "alice", n.Users.All()[0].Login)

	n.Users.Reset()
	assert.Zero(t, n.Users.Len())
}

func TestUserRegistry_Attributes(t *testing.T) {
	n := newTestNetwork(t, "alice")

	t.Run("reserved keys read from the account", func(t *testing.T) {
		v, err := n.Users.Attribute("alice", AttributeName)
		require.NoError(t, err)
		assert.Equal(t, "alice-name", v)

		v, err = n.Users.Attribute("alice", AttributeLogin)
		require.NoError(t, err)
		assert.Equal(t, "alice", v)
	})

	t.Run("unset attribute", func(t *testing.T) {
		_, err := n.Users.Attribute("alice", "city")
		require.ErrorIs(t, err, entities.ErrAttributeNotSet)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, n.Users.SetAttribute("alice", "city", "Maceio"))
		require.NoError(t, n.Users.SetAttribute("alice", "city", "Recife"))

		v, err := n.Users.Attribute("alice", "city")
		require.NoError(t, err)
		assert.Equal(t, "Recife", v)
	})

	t.Run("empty value reads as unset", func(t *testing.T) {
		require.NoError(t, n.Users.SetAttribute("alice", "mood", ""))
		_, err := n.Users.Attribute("alice", "mood")
		require.ErrorIs(t, err, entities.ErrAttributeNotSet)
	})

	t.Run("whitespace value", func(t *testing.T) {
		require.NoError(t, n.Users.SetAttribute("alice", "motto", "carpe diem"))
		for _, value := range []string{" ", "  \t"} {
			err := n.Users.SetAttribute("alice", "motto", value)
			require.ErrorIs(t, err, entities.ErrInvalidAttribute, "value %q", value)
		}

		v, err := n.Users.Attribute("alice", "motto")
		require.NoError(t, err)
		assert.Equal(t, "carpe diem", v)
	})

	t.Run("invalid keys", func(t *testing.T) {
		for _, key := range []string{"", "  ", AttributeName, AttributeLogin} {
			err := n.Users.SetAttribute("alice", key, "x")
			require.ErrorIs(t, err, entities.ErrInvalidAttribute, "key %q", key)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := n.Users.Attribute("ghost", "city")
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.ErrorIs(t, n.Users.SetAttribute("ghost", "city", "x"), entities.ErrUserNotFound)
	})
}
