package pngme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tynrol/pngme/png"
)

// signatureOnly is a valid png with no chunks at all.
func signatureOnly() []byte {
	return png.FromChunks(nil).Bytes()
}

func TestEncodeDecode(t *testing.T) {
	buf, err := Encode(signatureOnly(), "ruSt", "hello")
	require.NoError(t, err)

	message, err := Decode(buf, "ruSt")
	require.NoError(t, err)
	require.Equal(t, "hello", message)
}

func TestDecodeMissingType(t *testing.T) {
	buf, err := Encode(signatureOnly(), "ruSt", "hello")
	require.NoError(t, err)

	_, err = Decode(buf, "XYZa")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestEncodeRejectsBadChunkType(t *testing.T) {
	_, err := Encode(signatureOnly(), "Ru1t", "hello")
	require.ErrorIs(t, err, png.ErrInvalidReservedChar)
}

func TestEncodeRejectsBadBuffer(t *testing.T) {
	_, err := Encode([]byte("definitely not a png"), "ruSt", "hello")
	require.ErrorIs(t, err, png.ErrNotPNG)
}

func TestRemoveRestoresOriginal(t *testing.T) {
	original := signatureOnly()
	buf, err := Encode(original, "ruSt", "hello")
	require.NoError(t, err)
	require.False(t, bytes.Equal(original, buf))

	out, err := Remove(buf, "ruSt")
	require.NoError(t, err)
	require.True(t, bytes.Equal(original, out))
}

func TestRemoveMissingType(t *testing.T) {
	_, err := Remove(signatureOnly(), "ruSt")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestEncodedBufferStaysValid(t *testing.T) {
	buf, err := Encode(signatureOnly(), "ruSt", "hello")
	require.NoError(t, err)
	buf, err = Encode(buf, "teSt", "world")
	require.NoError(t, err)

	p, err := png.Parse(buf)
	require.NoError(t, err)
	require.Len(t, p.Chunks(), 2)
}
