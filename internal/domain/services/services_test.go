package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedNow pins timeNow for the duration of a test.
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
	return now
}

// newTestNetwork returns an empty network with one user per login. Each user
// is named "<login>-name" and uses password "pw".
func newTestNetwork(t *testing.T, logins ...string) *Network {
	t.Helper()
	n := NewNetwork(nil)
	for _, login := range logins {
		_, err := n.Users.Register(login+"-name", "pw", login)
		require.NoError(t, err)
	}
	return n
}
