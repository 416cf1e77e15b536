package snapshot

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// YAMLCodec reads and writes YAML.
type YAMLCodec struct{}

// Encode writes snap as YAML.
func (c *YAMLCodec) Encode(w io.Writer, snap *entities.Snapshot) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flushing YAML: %w", err)
	}
	return nil
}

// Decode reads a YAML snapshot.
func (c *YAMLCodec) Decode(r io.Reader) (*entities.Snapshot, error) {
	var snap entities.Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	fillProfiles(&snap)
	return &snap, nil
}
