// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitblock encodes and decodes arrays of small, fixed-layout
// structs as a single length-prefixed block, independent of the
// [wirecodec] field model.
//
// An element type must be 4-byte aligned and no larger than 32 bytes;
// Encode writes its width as a 3-bit word count (1..8 four-byte words)
// followed by a 13-bit element count, then every element's raw bytes in
// 32-bit or 64-bit words. Decode adapts to a mismatch between the
// width the block was written with and the width of the Go type it is
// read into: a narrower reader keeps its first N words per element and
// skips the remainder on the wire; a wider reader leaves the tail of
// each decoded element at its zero value.
package bitblock
