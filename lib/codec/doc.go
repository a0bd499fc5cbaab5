// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides a CBOR encoding configuration used as the
// benchmark CLI's comparison baseline against the bit-oriented
// [wirecodec] encoding.
//
// A fixture loaded from YAML is marshaled both through [wirecodec] and
// through this package, so the bench tool can report how many bytes
// the bit-packed encoding saves (or costs) against a general-purpose
// self-describing format. The encoder uses Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces
// identical bytes, which keeps repeated bench runs over the same
// fixture comparable byte-for-byte.
//
//	data, err := codec.Marshal(value)
//	notation, err := codec.Diagnose(data)
package codec
