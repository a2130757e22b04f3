// Copyright 2023 The pngme Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package chunkdata implements IO routines for reading and writing a single
// chunk of the PNG container format, including the 4-byte case-encoded type
// tag and the CRC-32 integrity check.
package chunkdata
