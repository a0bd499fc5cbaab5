// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "github.com/zsuzuki/code-serializer/lib/bitstream"

// Field is one typed, polymorphic element of a record. Concrete
// variants are [BoolField], [VersionField], [StringField],
// [IntegerField], [BitsField], and [IntegerArrayField].
//
// Field order inside a [FieldLink] is fixed at record construction and
// identical across all instances of the same record type; FieldLink
// walks two fields at the same position and assumes they are the same
// concrete type. Equal and Copy report false/no-op when that assumption
// doesn't hold.
type Field interface {
	// Equal reports whether other holds the same concrete type and
	// value as the receiver.
	Equal(other Field) bool
	// Copy assigns the receiver's value from other, if other holds the
	// same concrete type. It is a no-op otherwise.
	Copy(other Field)

	// Serialize appends one self-delimited encoding of the field's
	// current value.
	Serialize(stream *bitstream.Stream) bool
	// SerializeDiff appends an encoding that, applied by DeserializeDiff
	// to a receiver whose state equals this field's current value,
	// reconstructs base's value.
	SerializeDiff(stream *bitstream.Stream, base Field) bool
	// Deserialize parses a full encoding, replacing the field's value.
	Deserialize(stream *bitstream.Stream) bool
	// DeserializeDiff parses a delta encoding and applies it to the
	// field's current value.
	DeserializeDiff(stream *bitstream.Stream) bool

	// IsBool reports whether this field is a BoolField.
	IsBool() bool
	// IsSeparator reports whether this field is a VersionField.
	IsSeparator() bool
	// ByteSize returns the storage width of one element, in bytes.
	ByteSize() int
	// ArrayLen returns the field's element count (1 for scalars, 0 for
	// Version and Bool).
	ArrayLen() int
}

// Integer is the closed set of fixed-width integer types that
// [IntegerField], [BitsField], and [IntegerArrayField] may hold.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

func isSignedInteger[T Integer]() bool {
	var zero T
	switch any(zero).(type) {
	case int8, int16, int32, int64:
		return true
	default:
		return false
	}
}

func integerBits[T Integer]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	default:
		return 64
	}
}

// serializeNumber writes a single value of a fixed-width integer type
// using the discriminator/size-field scheme shared by Integer and Bits.
func serializeNumber[T Integer](stream *bitstream.Stream, value T) bool {
	bits := integerBits[T]()
	if isSignedInteger[T]() {
		return writeInt(stream, int64(value), bits)
	}
	return writeUint(stream, uint64(value), bits)
}

// serializeNumberDiff writes base-value minus current-value, the delta
// that lets a receiver holding current reconstruct base.
func serializeNumberDiff[T Integer](stream *bitstream.Stream, current, base T) bool {
	bits := integerBits[T]()
	if isSignedInteger[T]() {
		return writeInt(stream, int64(base)-int64(current), bits)
	}
	return writeUint(stream, uint64(base)-uint64(current), bits)
}

func deserializeNumber[T Integer](stream *bitstream.Stream) (T, bool) {
	if isSignedInteger[T]() {
		v, ok := readInt(stream)
		return T(v), ok
	}
	v, ok := readUint(stream)
	return T(v), ok
}

// deserializeNumberDiff reads a delta and adds it to current.
func deserializeNumberDiff[T Integer](stream *bitstream.Stream, current T) (T, bool) {
	if isSignedInteger[T]() {
		diff, ok := readInt(stream)
		if !ok {
			return current, false
		}
		return T(int64(current) + diff), true
	}
	diff, ok := readUint(stream)
	if !ok {
		return current, false
	}
	return T(uint64(current) + diff), true
}
