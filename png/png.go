// Package png models a png file as its raw chunk sequence. It never decodes
// image data; chunks are parsed, checksummed, rearranged and written back
// byte for byte.
package png

import (
	"bytes"
	"fmt"
)

// Signature is the fixed 8-byte prefix of every png file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// Png is an ordered chunk sequence. Serialization writes the chunks back in
// the same relative order they were parsed or appended in.
type Png struct {
	chunks []*Chunk
}

// Parse validates the signature and reads chunks until the buffer is
// exhausted. The first malformed or corrupted chunk aborts the whole parse.
func Parse(b []byte) (*Png, error) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, ErrNotPNG
	}
	r := bytes.NewReader(b[len(Signature):])
	p := &Png{}
	for r.Len() > 0 {
		c, err := ReadChunk(r)
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, c)
	}
	return p, nil
}

// FromChunks builds an in-memory png from an existing chunk sequence.
func FromChunks(chunks []*Chunk) *Png {
	return &Png{chunks: chunks}
}

// Bytes serializes the signature followed by every chunk in order.
func (p *Png) Bytes() []byte {
	out := make([]byte, 0, len(Signature))
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = append(out, c.Bytes()...)
	}
	return out
}

func (p *Png) Chunks() []*Chunk {
	return p.chunks
}

// AppendChunk adds a chunk at the end of the sequence. Duplicate types are
// allowed, matching the png multi-chunk model.
func (p *Png) AppendChunk(c *Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type renders as chunkType, or
// nil when there is none.
func (p *Png) ChunkByType(chunkType string) *Chunk {
	for _, c := range p.chunks {
		if c.chunkType.String() == chunkType {
			return c
		}
	}
	return nil
}

// ChunksByType returns every chunk of the given type in sequence order.
func (p *Png) ChunksByType(chunkType string) []*Chunk {
	var out []*Chunk
	for _, c := range p.chunks {
		if c.chunkType.String() == chunkType {
			out = append(out, c)
		}
	}
	return out
}

// RemoveChunk removes and returns the first chunk of the given type. Only
// the first match is removed even when duplicates exist.
func (p *Png) RemoveChunk(chunkType string) (*Chunk, error) {
	for i, c := range p.chunks {
		if c.chunkType.String() == chunkType {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", chunkType, ErrChunkNotFound)
}
