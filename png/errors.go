package png

import "errors"

// Every failure the package reports wraps one of these sentinels, so callers
// can match on the kind with errors.Is.
var (
	ErrInvalidASCII        = errors.New("chunk type contains a non-ascii byte")
	ErrInvalidLength       = errors.New("chunk type must be exactly 4 characters")
	ErrInvalidReservedChar = errors.New("chunk type has a digit in its third character")
	ErrUnexpectedEOF       = errors.New("unexpected end of chunk data")
	ErrChecksumMismatch    = errors.New("chunk crc does not match its contents")
	ErrNotPNG              = errors.New("missing png signature")
	ErrChunkNotFound       = errors.New("no chunk with the requested type")
	ErrInvalidText         = errors.New("chunk data is not valid utf-8")
)
