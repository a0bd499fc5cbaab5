// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for encoded record
// buffers.
//
// The benchmark CLI fingerprints the bytes its [wirecodec] encoding
// produces so that two runs over the same fixture input can be compared
// for byte-identical output without diffing the full buffers. BLAKE3 is
// used instead of a general-purpose cryptographic hash because the
// buffers involved are small and not security-critical.
//
// The API surface is four functions:
//
//   - [HashFile] -- streams a file through BLAKE3, returning a [32]byte
//     digest with constant memory usage regardless of file size
//   - [HashBytes] -- hashes an in-memory buffer directly, for encoded
//     output that was never written to disk
//   - [FormatDigest] -- converts a [32]byte digest to its canonical
//     hex-encoded string representation, used in bench report output
//   - [ParseDigest] -- parses a hex-encoded digest string back to a
//     [32]byte array, validating length and encoding
//
// This package has no dependencies on other packages in this module.
package binhash
