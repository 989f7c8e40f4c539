package png

// ChunkType is the 4-byte code naming a chunk. The case of each byte doubles
// as a property bit: an uppercase letter has bit 5 clear.
type ChunkType [4]byte

// NewChunkType wraps raw bytes without any validation. Callers that need a
// guaranteed-valid type should use ChunkTypeFromBytes or ChunkTypeFromString
// and inspect IsValid.
func NewChunkType(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ChunkTypeFromBytes rejects any byte outside the ascii range.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if c >= 0x80 {
			return ChunkType{}, ErrInvalidASCII
		}
	}
	return ChunkType(b), nil
}

// ChunkTypeFromString parses a 4-character type code. A digit in the third
// position is rejected outright since it can never satisfy the reserved-bit
// rule, which requires an uppercase letter there.
func ChunkTypeFromString(s string) (ChunkType, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return ChunkType{}, ErrInvalidASCII
		}
	}
	if len(s) != 4 {
		return ChunkType{}, ErrInvalidLength
	}
	if s[2] >= '0' && s[2] <= '9' {
		return ChunkType{}, ErrInvalidReservedChar
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkType(b), nil
}

func (t ChunkType) Bytes() [4]byte {
	return t
}

func (t ChunkType) String() string {
	return string(t[:])
}

// IsCritical reports whether decoders must understand this chunk.
func (t ChunkType) IsCritical() bool {
	return isUpper(t[0])
}

// IsPublic reports whether the type belongs to the public registry.
func (t ChunkType) IsPublic() bool {
	return isUpper(t[1])
}

// IsReservedBitValid reports whether the reserved position holds an uppercase
// letter, as every conforming type must.
func (t ChunkType) IsReservedBitValid() bool {
	return isUpper(t[2])
}

// IsSafeToCopy reports whether editors may carry the chunk over unchanged.
func (t ChunkType) IsSafeToCopy() bool {
	return isLower(t[3])
}

// IsValid reports whether all four bytes are ascii and the reserved bit is
// in its required state.
func (t ChunkType) IsValid() bool {
	for _, c := range t {
		if c >= 0x80 {
			return false
		}
	}
	return t.IsReservedBitValid()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
