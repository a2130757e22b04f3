// Copyright 2023 The pngme Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package chunkdata

import (
	"fmt"
	"hash/crc32"
)

// Checksum computes a chunk's CRC: CRC-32/ISO-HDLC (the crc32.IEEE
// parameterization) over the 4 type code bytes followed by the payload.
// The length prefix and the stored checksum are never part of the span.
func Checksum(tag TypeTag, payload []byte) uint32 {
	h := crc32.NewIEEE()
	code := tag.Bytes()
	h.Write(code[:])
	h.Write(payload)
	return h.Sum32()
}

// ErrMismatchedChecksum is returned when a decoded chunk's stored checksum
// doesn't match up with the one recomputed over its type tag and payload.
// It signals either corruption in transit or a forged record.
type ErrMismatchedChecksum struct {
	Nominal uint32
	Actual  uint32
}

func (e *ErrMismatchedChecksum) Error() string {
	return fmt.Sprintf("mismatched checksum: %08x expected %08x", e.Nominal, e.Actual)
}
