// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitstream provides a fixed-capacity, bit-addressable buffer.
//
// A [Stream] is a flat sequence of bits backed by a word-sized ([]uint64)
// array. Callers write and read up to 64 bits at a time at the stream's
// current cursor position, plus byte-aligned helpers for byte-granular
// payloads. Every operation reports success as a trailing bool rather than
// an error: running out of room is an expected, recoverable condition on
// this hot, synchronous path, not an exceptional one, so there is nothing
// for an error value to add. A failed write or read never changes the
// cursor position and never partially applies its effect.
//
// Numbers are written in sign/magnitude form, not two's complement: the
// top bit of an n-bit field is the sign, and the remaining n-1 bits hold
// the absolute value. This is a deliberate wire format choice (see
// [Stream.WriteSigned]) that callers must not silently change to two's
// complement, since it changes the bytes on the wire.
//
// Stream is not safe for concurrent use. Parallelism is available only
// across independent Stream instances.
package bitstream
