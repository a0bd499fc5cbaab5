// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wirecodec implements a compact, self-describing binary codec
// for structured records whose field layout may evolve over time between
// producer and consumer.
//
// A record is a fixed, ordered sequence of [Field] values — booleans,
// fixed-width integers, integer arrays, bit-sets, and byte strings —
// punctuated by zero-width [Version] markers that delimit schema
// generations appended over the record's history. There is no field
// identifier or name on the wire: field order IS the schema, and reader
// and writer must agree on it out of band.
//
// # Wire shape
//
// Every top-level field begins with a 2-bit discriminator. 00 means a
// zero-valued number, an unchanged diff, or a false boolean. 01 means a
// true boolean; numbers never use it, and a number decoder rejects it.
// 10 marks a version separator.
// 11 introduces an extended header: a 6-bit size field, which is either
// a scalar bit width (size >= 1) or an array marker (size == 0, followed
// by a one-byte element count).
//
// # Building a record
//
//	link := &wirecodec.FieldLink{}
//	enabled := wirecodec.NewBool(false, link)
//	count := wirecodec.NewInteger[uint32](0, link)
//	name := wirecodec.NewString("", link)
//
//	enabled.Set(true)
//	count.Set(100)
//	name.Set("Watashi")
//
//	stream := bitstream.New(link.NeedTotalBytes())
//	if !link.Serialize(stream) {
//		// handle failure
//	}
//
// Decoding an older writer's bytes into a newer reader (or vice versa)
// is always safe: [FieldLink.Deserialize] stops cleanly at the first
// field whose discriminator doesn't parse as a [Version] separator past
// the shared prefix, leaving the rest of the record at its prior values.
//
// # Diffing
//
// [FieldLink.SerializeDiff] encodes only what changed relative to a base
// record of the same shape: unchanged numeric and string fields cost
// just the 2-bit discriminator. Each delta is base minus the writer's
// value, so [FieldLink.DeserializeDiff] applied to a receiver whose
// state equals the writer's turns that receiver into a copy of the base.
package wirecodec
