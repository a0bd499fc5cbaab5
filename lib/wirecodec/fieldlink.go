// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "github.com/zsuzuki/code-serializer/lib/bitstream"

// FieldLink is an ordered, owning sequence of [Field]s that together
// make up one record. Field order is fixed by construction order and
// must match between any two FieldLink values being compared, copied,
// or diffed against each other.
//
// A zero-valued FieldLink is ready to use; fields register themselves
// by calling add from their New* constructors.
type FieldLink struct {
	fields []Field
}

// NewFieldLink returns an empty FieldLink ready to receive fields.
func NewFieldLink() *FieldLink {
	return &FieldLink{}
}

func (l *FieldLink) add(f Field) {
	l.fields = append(l.fields, f)
}

// DataVersion reports how many version separators this record's fields
// contain, i.e. how many schema generations have been appended after
// the original.
func (l *FieldLink) DataVersion() uint32 {
	var version uint32
	for _, f := range l.fields {
		if f.IsSeparator() {
			version++
		}
	}
	return version
}

// Equal reports whether other has the same field count and every
// field compares equal at the same position.
func (l *FieldLink) Equal(other *FieldLink) bool {
	if len(l.fields) != len(other.fields) {
		return false
	}
	for i, f := range l.fields {
		if !f.Equal(other.fields[i]) {
			return false
		}
	}
	return true
}

// Copy assigns the receiver's fields from other, position by position.
// It is a no-op if the field counts differ.
func (l *FieldLink) Copy(other *FieldLink) {
	if len(l.fields) != len(other.fields) {
		return
	}
	for i, f := range l.fields {
		f.Copy(other.fields[i])
	}
}

// Serialize writes a full encoding of every field in order. On failure
// the stream's write cursor is restored to its position on entry, so a
// failed Serialize leaves no partial record behind.
func (l *FieldLink) Serialize(stream *bitstream.Stream) bool {
	begin := stream.Tell()
	for _, f := range l.fields {
		if !f.Serialize(stream) {
			stream.Seek(begin)
			return false
		}
	}
	return true
}

// SerializeDiff writes a delta encoding of every field relative to the
// same-position field in base. base must have the same field count
// and shape as the receiver. On failure the stream's write cursor is
// restored to its position on entry.
func (l *FieldLink) SerializeDiff(stream *bitstream.Stream, base *FieldLink) bool {
	if len(l.fields) != len(base.fields) {
		return false
	}
	begin := stream.Tell()
	for i, f := range l.fields {
		if !f.SerializeDiff(stream, base.fields[i]) {
			stream.Seek(begin)
			return false
		}
	}
	return true
}

// Deserialize reads a full encoding and replaces every field's value.
//
// A record written by an older schema generation ends where the newer
// generation's version separator would start; Deserialize treats a
// separator that fails to decode as a clean end-of-record, not a
// failure, rewinding the stream to just before the separator would have
// been read and reporting success. A failure anywhere else rewinds to
// the position on entry and reports failure. Fields decoded before the
// failing one keep their new values; decoding is not atomic, so a
// caller that needs all-or-nothing behavior decodes into a scratch
// record and copies it over on success.
func (l *FieldLink) Deserialize(stream *bitstream.Stream) bool {
	begin := stream.Tell()
	for _, f := range l.fields {
		prev := stream.Tell()
		if !f.Deserialize(stream) {
			if f.IsSeparator() {
				stream.Seek(prev)
				return true
			}
			stream.Seek(begin)
			return false
		}
	}
	return true
}

// DeserializeDiff reads a delta encoding and applies it to every
// field's current value, with the same older-generation tolerance as
// Deserialize.
func (l *FieldLink) DeserializeDiff(stream *bitstream.Stream) bool {
	begin := stream.Tell()
	for _, f := range l.fields {
		prev := stream.Tell()
		if !f.DeserializeDiff(stream) {
			if f.IsSeparator() {
				stream.Seek(prev)
				return true
			}
			stream.Seek(begin)
			return false
		}
	}
	return true
}

// NeedTotalBits estimates the bit size of a full Serialize of the
// current field values: every field's discriminator and size header,
// plus its payload at its storage width, plus either an 8-bit array
// count (arrays) or 7 bits of worst-case alignment padding (others).
// For scalar, string, bool and version fields this is an upper bound.
// For IntegerArrayField it is not: each element is counted at T's
// storage width, while the array element encoding spends a 2-bit tag
// plus up to 62 payload bits per element, so arrays holding large values
// can encode to more bits than this returns.
func (l *FieldLink) NeedTotalBits() int {
	bits := 0
	for _, f := range l.fields {
		bits += baseBits
		if f.IsBool() || f.IsSeparator() {
			continue
		}
		bits += sizeBits
		single := f.ByteSize() * 8
		count := f.ArrayLen()
		bits += count * single
		if count > 1 {
			bits += 8
		} else {
			bits += 7
		}
	}
	return bits
}

// NeedTotalBytes is NeedTotalBits rounded up to a whole byte.
func (l *FieldLink) NeedTotalBytes() int {
	return (l.NeedTotalBits() + 7) / 8
}
