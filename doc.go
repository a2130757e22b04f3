// Copyright 2023 The pngme Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pngme implements the codec for the chunk record used by the PNG
// container format: a length-prefixed, type-tagged, checksummed run of
// bytes. It deals in single, already-isolated records; walking a whole PNG
// stream (the 8-byte file signature, the IHDR..IEND sequence, file IO) is
// the job of whatever calls it.
//
// A chunk has a fairly basic format:
//   * length (4 bytes, unsigned big-endian): the number of payload bytes.
//   * type tag (4 bytes): ASCII letters only. The case of each byte encodes
//     one property bit (see chunkdata.TypeTag).
//   * payload (length bytes): opaque to this package, except for an
//     optional UTF-8 text view.
//   * checksum (4 bytes, unsigned big-endian): CRC-32 (ISO-HDLC) computed
//     over the type tag bytes followed by the payload. The length prefix
//     and the checksum itself are never part of the span.
//
// The trailing checksum means any record can be verified in isolation,
// without knowing anything about its neighbors or its position in the file.
//
// All of the actual codec routines live in the chunkdata subpackage.
package pngme
