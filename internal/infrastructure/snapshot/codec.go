// Package snapshot encodes and decodes full Jackut snapshots for export and import.
package snapshot

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// Codec reads and writes a snapshot in one serialization format.
type Codec interface {
	Encode(w io.Writer, snap *entities.Snapshot) error
	Decode(r io.Reader) (*entities.Snapshot, error)
}

// ForFormat returns the codec for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Codec {
	switch strings.ToLower(format) {
	case "json":
		return &JSONCodec{}
	case "yaml", "yml":
		return &YAMLCodec{}
	default:
		return nil
	}
}

// ForFile returns the codec matching the file extension.
func ForFile(filename string) Codec {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}
