package pngme

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/crypto/scrypt"

	"github.com/tynrol/pngme/png"
)

// Encrypted payloads live in private ancillary chunks: the scrypt salt in a
// single saLt chunk and the ciphertext split across crPt chunks.
const (
	SaltChunkType = "saLt"
	DataChunkType = "crPt"

	payloadChunkSize = 0x100000

	scryptN    = 32768
	scryptR    = 8
	scryptP    = 1
	keyLength  = 32
	saltLength = 32
)

// NewSalt draws a fresh random salt for key derivation.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey stretches a password into an aes-256 key.
func DeriveKey(password, salt []byte) ([]byte, error) {
	return scrypt.Key(password, salt, scryptN, scryptR, scryptP, keyLength)
}

// Salt extracts the stored salt from an encoded file.
func Salt(buf []byte) ([]byte, error) {
	p, err := png.Parse(buf)
	if err != nil {
		return nil, err
	}
	c := p.ChunkByType(SaltChunkType)
	if c == nil {
		return nil, fmt.Errorf("%q: %w", SaltChunkType, png.ErrChunkNotFound)
	}
	return c.Data(), nil
}

// EncodeEncrypted encrypts data with key and embeds it in the file: one salt
// chunk, then the ciphertext in payloadChunkSize slices appended in order.
func EncodeEncrypted(buf, key, salt, data []byte) ([]byte, error) {
	p, err := png.Parse(buf)
	if err != nil {
		return nil, err
	}
	saltType, err := png.ChunkTypeFromString(SaltChunkType)
	if err != nil {
		return nil, err
	}
	dataType, err := png.ChunkTypeFromString(DataChunkType)
	if err != nil {
		return nil, err
	}
	cipherText, err := encryptPayload(key, data)
	if err != nil {
		return nil, err
	}
	p.AppendChunk(png.NewChunk(saltType, salt))
	chunkCount := (len(cipherText) + payloadChunkSize - 1) / payloadChunkSize
	bar := pb.StartNew(chunkCount)
	for start := 0; start < len(cipherText); start += payloadChunkSize {
		end := min(start+payloadChunkSize, len(cipherText))
		p.AppendChunk(png.NewChunk(dataType, cipherText[start:end]))
		bar.Increment()
	}
	bar.Finish()
	return p.Bytes(), nil
}

// DecodeEncrypted collects every payload chunk in order and decrypts the
// concatenated ciphertext with key.
func DecodeEncrypted(buf, key []byte) ([]byte, error) {
	p, err := png.Parse(buf)
	if err != nil {
		return nil, err
	}
	chunks := p.ChunksByType(DataChunkType)
	if len(chunks) == 0 {
		return nil, errors.New("no encrypted payload inside the image")
	}
	var cipherText []byte
	bar := pb.StartNew(len(chunks))
	for _, c := range chunks {
		cipherText = append(cipherText, c.Data()...)
		bar.Increment()
	}
	bar.Finish()
	return decryptPayload(key, cipherText)
}

// encryptPayload prepends a random iv and encrypts data with aes-cfb.
func encryptPayload(key, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	cipherText := make([]byte, aes.BlockSize+len(data))
	iv := cipherText[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	cfb := cipher.NewCFBEncrypter(block, iv)
	cfb.XORKeyStream(cipherText[aes.BlockSize:], data)
	return cipherText, nil
}

// decryptPayload splits off the iv and decrypts the rest in place.
func decryptPayload(key, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(data) < aes.BlockSize {
		return nil, errors.New("encrypted payload too short")
	}
	iv := data[:aes.BlockSize]
	data = data[aes.BlockSize:]
	cfb := cipher.NewCFBDecrypter(block, iv)
	cfb.XORKeyStream(data, data)
	return data, nil
}
