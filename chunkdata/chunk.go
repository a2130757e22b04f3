// Copyright 2023 The pngme Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package chunkdata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"go.chromium.org/luci/common/errors"
)

// Wire sizes of the fixed chunk fields.
const (
	lengthSize = 4
	crcSize    = 4
	headerSize = lengthSize + TagSize
)

// Chunk is a single record of the chunk stream: a length prefix, a TypeTag,
// an opaque payload of exactly `length` bytes, and a trailing CRC over
// (tag ‖ payload).
//
// Every field is fixed at construction; a Chunk which exists is a valid
// one. Instances may be shared across goroutines without synchronization.
type Chunk struct {
	tag     TypeTag
	payload []byte
	length  uint32
	crc     uint32
}

// ErrTruncated is returned by Decode when the buffer holds fewer bytes than
// a fixed field or the declared payload length requires.
type ErrTruncated struct {
	Field string
	Need  int
	Have  int
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("truncated chunk: %s needs %d bytes, have %d", e.Field, e.Need, e.Have)
}

// ErrNonText is returned by Text for a payload which isn't valid UTF-8.
var ErrNonText = errors.New("payload is not valid UTF-8 text")

// New builds a Chunk from a type tag and payload, computing the length and
// checksum fields. It cannot fail: the only invalid input, a malformed type
// code, is already ruled out by the TypeTag constructors.
//
// The payload (which may be empty) is copied, so the caller is free to
// reuse its buffer.
func New(tag TypeTag, payload []byte) *Chunk {
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return &Chunk{
		tag:     tag,
		payload: buf,
		length:  uint32(len(buf)),
		crc:     Checksum(tag, buf),
	}
}

// Decode parses one encoded chunk record from the front of buf, verifying
// the trailing checksum over the type tag and payload bytes. Bytes past the
// record are ignored.
func Decode(buf []byte) (*Chunk, error) {
	if len(buf) < lengthSize {
		return nil, &ErrTruncated{Field: "length", Need: lengthSize, Have: len(buf)}
	}
	length := binary.BigEndian.Uint32(buf)
	rest := buf[lengthSize:]

	if len(rest) < TagSize {
		return nil, &ErrTruncated{Field: "type tag", Need: TagSize, Have: len(rest)}
	}
	code := [TagSize]byte{}
	copy(code[:], rest)
	tag, err := TagFromBytes(code)
	if err != nil {
		return nil, err
	}
	rest = rest[TagSize:]

	if uint64(length) > uint64(len(rest)) {
		return nil, &ErrTruncated{Field: "payload", Need: int(length), Have: len(rest)}
	}
	payload := make([]byte, length)
	copy(payload, rest)
	rest = rest[length:]

	if len(rest) < crcSize {
		return nil, &ErrTruncated{Field: "checksum", Need: crcSize, Have: len(rest)}
	}
	nominal := binary.BigEndian.Uint32(rest)
	if actual := Checksum(tag, payload); actual != nominal {
		return nil, &ErrMismatchedChecksum{Nominal: nominal, Actual: actual}
	}

	return &Chunk{tag: tag, payload: payload, length: length, crc: nominal}, nil
}

// VerifyStateEnum allows you to control how ReadChunk treats the stored
// checksum. It defaults to VerifyChecksum.
type VerifyStateEnum int

// Valid values of VerifyStateEnum.
const (
	// The checksum is recomputed over the type tag and payload, and the
	// chunk is rejected on mismatch.
	VerifyChecksum VerifyStateEnum = iota

	// The stored checksum is accepted as-is. Useful for scanners which
	// quarantine damaged records instead of dropping them.
	VerifyNever
)

type readOptionData struct {
	verifyState VerifyStateEnum
}

// ReadOption functions can be supplied to ReadChunk.
type ReadOption func(*readOptionData)

// WithVerification allows you to dictate how the stored checksum is
// verified.
func WithVerification(val VerifyStateEnum) ReadOption {
	return func(o *readOptionData) {
		o.verifyState = val
	}
}

// ReadChunk reads exactly one encoded chunk record from r, leaving the
// reader positioned at the first byte past the record.
//
// Unlike Decode, a stream has no notion of how many bytes remain, so short
// reads surface as annotated io errors rather than ErrTruncated.
func ReadChunk(r io.Reader, options ...ReadOption) (*Chunk, error) {
	opts := readOptionData{}
	for _, o := range options {
		o(&opts)
	}

	fixed := [headerSize]byte{}
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, errors.Annotate(err, "reading chunk header").Err()
	}
	length := binary.BigEndian.Uint32(fixed[:lengthSize])
	code := [TagSize]byte{}
	copy(code[:], fixed[lengthSize:])
	tag, err := TagFromBytes(code)
	if err != nil {
		return nil, err
	}

	if length > math.MaxInt32 {
		return nil, errors.Reason("declared payload length %d exceeds int32", length).Err()
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.Annotate(err, "reading chunk payload").Err()
	}

	crcBuf := [crcSize]byte{}
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		return nil, errors.Annotate(err, "reading chunk checksum").Err()
	}
	nominal := binary.BigEndian.Uint32(crcBuf[:])

	if opts.verifyState == VerifyChecksum {
		if actual := Checksum(tag, payload); actual != nominal {
			return nil, &ErrMismatchedChecksum{Nominal: nominal, Actual: actual}
		}
	}

	return &Chunk{tag: tag, payload: payload, length: length, crc: nominal}, nil
}

// Write streams the encoded record to w: length, type code, payload, then
// checksum, with the fixed-width fields big-endian.
func (c *Chunk) Write(w io.Writer) error {
	fixed := [headerSize]byte{}
	binary.BigEndian.PutUint32(fixed[:], c.length)
	code := c.tag.Bytes()
	copy(fixed[lengthSize:], code[:])
	if _, err := w.Write(fixed[:]); err != nil {
		return errors.Annotate(err, "writing chunk header").Err()
	}
	if _, err := w.Write(c.payload); err != nil {
		return errors.Annotate(err, "writing chunk payload").Err()
	}
	crcBuf := [crcSize]byte{}
	binary.BigEndian.PutUint32(crcBuf[:], c.crc)
	if _, err := w.Write(crcBuf[:]); err != nil {
		return errors.Annotate(err, "writing chunk checksum").Err()
	}
	return nil
}

// Encode renders the chunk in its wire form. Decode(c.Encode()) returns a
// Chunk equal to c, byte for byte.
func (c *Chunk) Encode() []byte {
	buf := bytes.Buffer{}
	buf.Grow(headerSize + len(c.payload) + crcSize)
	if err := c.Write(&buf); err != nil {
		panic(err) // bytes.Buffer writes don't fail
	}
	return buf.Bytes()
}

// Length returns the declared payload byte count.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Tag returns the chunk's type tag.
func (c *Chunk) Tag() TypeTag {
	return c.tag
}

// Payload returns the chunk's payload bytes. The returned slice is the
// chunk's own buffer; treat it as read-only.
func (c *Chunk) Payload() []byte {
	return c.payload
}

// CRC returns the stored checksum value.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Text interprets the payload as UTF-8 text. The payload is otherwise
// opaque; this is a convenience for the text-bearing chunk types.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.payload) {
		return "", ErrNonText
	}
	return string(c.payload), nil
}
