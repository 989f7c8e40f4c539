package pngme

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tynrol/pngme/png"
)

func TestEncryptedRoundTrip(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	key, err := DeriveKey([]byte("hunter2"), salt)
	require.NoError(t, err)

	// Larger than one payload chunk so the split path is exercised.
	data := make([]byte, payloadChunkSize+100)
	_, err = io.ReadFull(rand.Reader, data)
	require.NoError(t, err)

	buf, err := EncodeEncrypted(signatureOnly(), key, salt, data)
	require.NoError(t, err)

	p, err := png.Parse(buf)
	require.NoError(t, err)
	require.NotNil(t, p.ChunkByType(SaltChunkType))
	require.Len(t, p.ChunksByType(DataChunkType), 2)

	got, err := DecodeEncrypted(buf, key)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, got))
}

func TestSaltIsStored(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	key, err := DeriveKey([]byte("hunter2"), salt)
	require.NoError(t, err)

	buf, err := EncodeEncrypted(signatureOnly(), key, salt, []byte("payload"))
	require.NoError(t, err)

	got, err := Salt(buf)
	require.NoError(t, err)
	require.Equal(t, salt, got)
}

func TestSaltMissing(t *testing.T) {
	_, err := Salt(signatureOnly())
	require.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestDecodeEncryptedWithoutPayload(t *testing.T) {
	key := make([]byte, keyLength)
	_, err := DecodeEncrypted(signatureOnly(), key)
	require.Error(t, err)
}

func TestDeriveKeyIsDeterministic(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	first, err := DeriveKey([]byte("hunter2"), salt)
	require.NoError(t, err)
	second, err := DeriveKey([]byte("hunter2"), salt)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, keyLength)
}
