package snapshot

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/jackut/internal/domain/entities"
)

func testSnapshot() *entities.Snapshot {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	alice := entities.NewUser("alice", "Alice", "pw", now)
	bob := entities.NewUser("bob", "Bob", "pw", now)
	alice.Profile.Enemies.Add("bob")
	bob.Profile.Enemies.Add("alice")
	alice.Profile.SetAttribute("city", "Maceio")
	alice.Profile.OwnerOf.Add("Go Fans")
	alice.Profile.MemberOf.Add("Go Fans")
	bob.Profile.PushNote(entities.Note{ID: "n1", Sender: "alice", Recipient: "bob", Text: "hi", System: true, SentAt: now})

	return &entities.Snapshot{
		Users:       []*entities.User{alice, bob},
		Communities: []*entities.Community{entities.NewCommunity("Go Fans", "We love Go", "alice", now)},
		Sessions:    []entities.Session{{ID: "s1", Login: "alice", OpenedAt: now}},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected Codec
	}{
		{format: "json", expected: &JSONCodec{}},
		{format: "JSON", expected: &JSONCodec{}},
		{format: "yaml", expected: &YAMLCodec{}},
		{format: "yml", expected: &YAMLCodec{}},
		{format: "csv", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForFormat(tt.format))
		})
	}
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONCodec{}, ForFile("backup.json"))
	assert.IsType(t, &YAMLCodec{}, ForFile("/tmp/backup.yaml"))
	assert.Nil(t, ForFile("backup"))
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			codec := ForFormat(format)
			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, testSnapshot()))

			snap, err := codec.Decode(&buf)
			require.NoError(t, err)

			require.Len(t, snap.Users, 2)
			alice, bob := snap.Users[0], snap.Users[1]
			assert.Equal(t, "Alice", alice.Name)
			assert.Equal(t, entities.Set{"bob"}, alice.Profile.Enemies)
			assert.Equal(t, entities.Set{"alice"}, bob.Profile.Enemies)
			city, ok := alice.Profile.Attribute("city")
			assert.True(t, ok)
			assert.Equal(t, "Maceio", city)
			require.Len(t, bob.Profile.Notes, 1)
			assert.True(t, bob.Profile.Notes[0].System)

			require.Len(t, snap.Communities, 1)
			assert.Equal(t, entities.Set{"alice"}, snap.Communities[0].Members)
			require.Len(t, snap.Sessions, 1)
			assert.Equal(t, "s1", snap.Sessions[0].ID)
		})
	}
}

func TestDecode_FillsMissingProfiles(t *testing.T) {
	snap, err := (&JSONCodec{}).Decode(strings.NewReader(`{"users":[{"login":"alice","name":"Alice","password":"pw"}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	require.NotNil(t, snap.Users[0].Profile)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := (&JSONCodec{}).Decode(strings.NewReader("{"))
	require.Error(t, err)

	_, err = (&YAMLCodec{}).Decode(strings.NewReader("users: [\n"))
	require.Error(t, err)
}
