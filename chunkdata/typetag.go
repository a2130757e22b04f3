// Copyright 2023 The pngme Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package chunkdata

import (
	"fmt"
)

// TagSize is the wire size of a chunk's type tag, in bytes.
const TagSize = 4

// TypeTag is the 4-byte type code of a chunk.
//
// Every byte must be an ASCII letter. The case of each byte encodes one
// property bit:
//   * byte 0 uppercase: the chunk is critical (vs. ancillary).
//   * byte 1 uppercase: the chunk type is public (vs. private).
//   * byte 2 uppercase: the reserved bit is valid; lowercase tags are
//     reserved for future format revisions and are not valid today.
//   * byte 3 lowercase: the chunk is safe to copy by editors which don't
//     recognize it.
//
// TypeTag is an immutable value type; compare with ==.
type TypeTag struct {
	code [TagSize]byte
}

// ErrNonAlphabetic is returned when a type code contains a byte outside the
// ranges A-Z and a-z.
type ErrNonAlphabetic struct {
	Raw []byte
}

func (e *ErrNonAlphabetic) Error() string {
	return fmt.Sprintf("bad type tag %q: bytes may only be ASCII letters (A-Z, a-z)", e.Raw)
}

// ErrBadTagLength is returned by ParseTag for a string which is not exactly
// TagSize characters long.
type ErrBadTagLength struct {
	Length int
}

func (e *ErrBadTagLength) Error() string {
	return fmt.Sprintf("type tag must be exactly %d characters, found: %d", TagSize, e.Length)
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isAlpha(b byte) bool { return isUpper(b) || isLower(b) }

// TagFromBytes builds a TypeTag from its raw code bytes.
func TagFromBytes(raw [TagSize]byte) (TypeTag, error) {
	for _, b := range raw {
		if !isAlpha(b) {
			return TypeTag{}, &ErrNonAlphabetic{Raw: raw[:]}
		}
	}
	return TypeTag{code: raw}, nil
}

// ParseTag builds a TypeTag from its textual form.
//
// The alphabetic check runs before the length check: a string of the wrong
// length which also contains non-letter characters reports
// ErrNonAlphabetic, not ErrBadTagLength. Callers (and tests) observe this
// ordering, so it stays.
func ParseTag(s string) (TypeTag, error) {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return TypeTag{}, &ErrNonAlphabetic{Raw: []byte(s)}
		}
	}
	if len(s) != TagSize {
		return TypeTag{}, &ErrBadTagLength{Length: len(s)}
	}
	t := TypeTag{}
	copy(t.code[:], s)
	return t, nil
}

// Bytes returns the raw code bytes.
func (t TypeTag) Bytes() [TagSize]byte {
	return t.code
}

// IsCritical returns whether the chunk is required for rendering, as
// encoded by the case of byte 0.
func (t TypeTag) IsCritical() bool {
	return isUpper(t.code[0])
}

// IsPublic returns whether the chunk type is a public, registered one, as
// encoded by the case of byte 1.
func (t TypeTag) IsPublic() bool {
	return isUpper(t.code[1])
}

// IsReservedBitValid returns whether the reserved bit (the case of byte 2)
// conforms to the current format revision.
func (t TypeTag) IsReservedBitValid() bool {
	return isUpper(t.code[2])
}

// IsSafeToCopy returns whether an editor which doesn't recognize the chunk
// may carry it over unmodified, as encoded by the case of byte 3.
func (t TypeTag) IsSafeToCopy() bool {
	return isLower(t.code[3])
}

// IsValid returns whether the tag is valid under the current format
// revision. This is exactly the reserved bit; the alphabetic invariant is
// already enforced at construction.
func (t TypeTag) IsValid() bool {
	return t.IsReservedBitValid()
}

func (t TypeTag) String() string {
	// always valid text: every code byte is an ASCII letter.
	return string(t.code[:])
}
