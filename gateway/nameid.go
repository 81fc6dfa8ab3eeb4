// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"bytes"
	"errors"
	"strings"
)

// IDLength is the width of the on-chain candidate identifier in bytes.
const IDLength = 32

var (
	ErrEmptyName   = errors.New("candidate name is empty")
	ErrNameTooLong = errors.New("candidate name exceeds 31 UTF-8 bytes")
	ErrInvalidName = errors.New("candidate name contains a NUL byte")
)

// EncodeName lowercases name and packs its UTF-8 bytes into a
// zero-padded 32-byte identifier.
//
// Names longer than 31 bytes after lowercasing are rejected, never
// truncated: keeping one padding byte free means DecodeName can always
// tell content from padding. NUL bytes are rejected for the same reason.
func EncodeName(name string) ([IDLength]byte, error) {
	var id [IDLength]byte

	lower := strings.ToLower(name)
	if lower == "" {
		return id, ErrEmptyName
	}
	if strings.ContainsRune(lower, 0) {
		return id, ErrInvalidName
	}
	if len(lower) > IDLength-1 {
		return id, ErrNameTooLong
	}

	copy(id[:], lower)
	return id, nil
}

// DecodeName strips trailing zero padding from an identifier. It is the
// exact inverse of EncodeName for any admissible name.
func DecodeName(id [IDLength]byte) string {
	return string(bytes.TrimRight(id[:], "\x00"))
}
