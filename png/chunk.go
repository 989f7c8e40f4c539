package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"unicode/utf8"
)

// Chunk is one length-prefixed, checksummed unit of a png file:
// a 4-byte big-endian length, the type code, the payload and a crc32
// computed over type and payload.
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk around the given payload and computes its crc.
func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	return &Chunk{
		length:    uint32(len(data)),
		chunkType: chunkType,
		data:      data,
		crc:       checksum(chunkType, data),
	}
}

// ReadChunk reads one chunk from r and verifies its crc. The reader is
// expected to be positioned at the start of a chunk.
func ReadChunk(r io.Reader) (*Chunk, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, readErr(err)
	}
	length := binary.BigEndian.Uint32(buf)
	var chunkType ChunkType
	if _, err := io.ReadFull(r, chunkType[:]); err != nil {
		return nil, readErr(err)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, readErr(err)
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, readErr(err)
	}
	crc := binary.BigEndian.Uint32(buf)
	if crc != checksum(chunkType, data) {
		return nil, fmt.Errorf("%s chunk: %w", chunkType, ErrChecksumMismatch)
	}
	return &Chunk{length: length, chunkType: chunkType, data: data, crc: crc}, nil
}

// ParseChunk parses a single chunk from a byte slice.
func ParseChunk(b []byte) (*Chunk, error) {
	return ReadChunk(bytes.NewReader(b))
}

func (c *Chunk) Length() uint32 {
	return c.length
}

func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

func (c *Chunk) Data() []byte {
	return c.data
}

func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataAsText interprets the payload as utf-8 text.
func (c *Chunk) DataAsText() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%s chunk: %w", c.chunkType, ErrInvalidText)
	}
	return string(c.data), nil
}

// Bytes serializes the chunk in wire order, 12+length bytes in total.
func (c *Chunk) Bytes() []byte {
	out := make([]byte, 0, 12+len(c.data))
	out = binary.BigEndian.AppendUint32(out, c.length)
	out = append(out, c.chunkType[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.crc)
	return out
}

// checksum hashes the type bytes followed by the payload, the exact region
// the png crc covers.
func checksum(chunkType ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(chunkType[:])
	h.Write(data)
	return h.Sum32()
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEOF
	}
	return err
}
