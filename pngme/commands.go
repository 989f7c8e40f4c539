// Package pngme implements the message operations on top of the chunk model:
// parse a buffer, mutate the chunk sequence, serialize it back. File handling
// and user interaction stay with the caller.
package pngme

import (
	"fmt"

	"github.com/tynrol/pngme/png"
)

// Encode appends payload under the given chunk type and returns the
// re-serialized file.
func Encode(buf []byte, chunkType, payload string) ([]byte, error) {
	p, err := png.Parse(buf)
	if err != nil {
		return nil, err
	}
	t, err := png.ChunkTypeFromString(chunkType)
	if err != nil {
		return nil, err
	}
	p.AppendChunk(png.NewChunk(t, []byte(payload)))
	return p.Bytes(), nil
}

// Decode returns the message stored in the first chunk of the given type.
func Decode(buf []byte, chunkType string) (string, error) {
	p, err := png.Parse(buf)
	if err != nil {
		return "", err
	}
	c := p.ChunkByType(chunkType)
	if c == nil {
		return "", fmt.Errorf("%q: %w", chunkType, png.ErrChunkNotFound)
	}
	return c.DataAsText()
}

// Remove drops the first chunk of the given type and returns the
// re-serialized file.
func Remove(buf []byte, chunkType string) ([]byte, error) {
	p, err := png.Parse(buf)
	if err != nil {
		return nil, err
	}
	if _, err := p.RemoveChunk(chunkType); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}
