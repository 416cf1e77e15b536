package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// JSONCodec reads and writes indented JSON.
type JSONCodec struct{}

// Encode writes snap as JSON.
func (c *JSONCodec) Encode(w io.Writer, snap *entities.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Decode reads a JSON snapshot.
func (c *JSONCodec) Decode(r io.Reader) (*entities.Snapshot, error) {
	var snap entities.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	fillProfiles(&snap)
	return &snap, nil
}

// fillProfiles gives every decoded user a non-nil profile.
func fillProfiles(snap *entities.Snapshot) {
	for _, u := range snap.Users {
		if u != nil && u.Profile == nil {
			u.Profile = entities.NewProfile()
		}
	}
}
