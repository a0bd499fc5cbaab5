// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import (
	"unsafe"

	"github.com/zsuzuki/code-serializer/lib/bitstream"
)

// IntegerArrayField carries a fixed-count array of fixed-width integers.
// The count is fixed when the field is constructed (mirroring the
// original's compile-time array length, which Go's type system cannot
// express directly); Deserialize fails if the wire count differs.
type IntegerArrayField[T Integer] struct {
	values []T
}

// NewIntegerArray constructs an IntegerArrayField of the given count,
// every element initialized to init, and registers it with link.
func NewIntegerArray[T Integer](count int, init T, link *FieldLink) *IntegerArrayField[T] {
	values := make([]T, count)
	for i := range values {
		values[i] = init
	}
	f := &IntegerArrayField[T]{values: values}
	link.add(f)
	return f
}

// Len returns the array's fixed element count.
func (f *IntegerArrayField[T]) Len() int { return len(f.values) }

// At returns the value at index i.
func (f *IntegerArrayField[T]) At(i int) T { return f.values[i] }

// Set assigns the value at index i.
func (f *IntegerArrayField[T]) Set(i int, value T) { f.values[i] = value }

// Fill sets every element to value.
func (f *IntegerArrayField[T]) Fill(value T) {
	for i := range f.values {
		f.values[i] = value
	}
}

func (f *IntegerArrayField[T]) IsBool() bool      { return false }
func (f *IntegerArrayField[T]) IsSeparator() bool { return false }
func (f *IntegerArrayField[T]) ArrayLen() int     { return len(f.values) }

func (f *IntegerArrayField[T]) ByteSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (f *IntegerArrayField[T]) Equal(other Field) bool {
	o, ok := other.(*IntegerArrayField[T])
	if !ok || len(o.values) != len(f.values) {
		return false
	}
	for i, v := range f.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}

func (f *IntegerArrayField[T]) Copy(other Field) {
	o, ok := other.(*IntegerArrayField[T])
	if !ok || len(o.values) != len(f.values) {
		return
	}
	copy(f.values, o.values)
}

func (f *IntegerArrayField[T]) Serialize(stream *bitstream.Stream) bool {
	if !writeArrayHeader(stream, len(f.values)) {
		return false
	}
	signed := isSignedInteger[T]()
	for _, v := range f.values {
		if signed {
			if !writeArrayInt(stream, int64(v)) {
				return false
			}
		} else {
			if !writeArrayUint(stream, uint64(v)) {
				return false
			}
		}
	}
	return true
}

func (f *IntegerArrayField[T]) SerializeDiff(stream *bitstream.Stream, base Field) bool {
	o, ok := base.(*IntegerArrayField[T])
	if !ok || len(o.values) != len(f.values) {
		return false
	}
	if !writeArrayHeader(stream, len(f.values)) {
		return false
	}
	signed := isSignedInteger[T]()
	for i, v := range f.values {
		if signed {
			diff := int64(o.values[i]) - int64(v)
			if !writeArrayInt(stream, diff) {
				return false
			}
		} else {
			diff := uint64(o.values[i]) - uint64(v)
			if !writeArrayUint(stream, diff) {
				return false
			}
		}
	}
	return true
}

func (f *IntegerArrayField[T]) Deserialize(stream *bitstream.Stream) bool {
	count, ok := readArrayHeader(stream)
	if !ok || count != len(f.values) {
		return false
	}
	signed := isSignedInteger[T]()
	for i := range f.values {
		if signed {
			v, ok := readArrayInt(stream)
			if !ok {
				return false
			}
			f.values[i] = T(v)
		} else {
			v, ok := readArrayUint(stream)
			if !ok {
				return false
			}
			f.values[i] = T(v)
		}
	}
	return true
}

func (f *IntegerArrayField[T]) DeserializeDiff(stream *bitstream.Stream) bool {
	count, ok := readArrayHeader(stream)
	if !ok || count != len(f.values) {
		return false
	}
	signed := isSignedInteger[T]()
	for i := range f.values {
		if signed {
			diff, ok := readArrayInt(stream)
			if !ok {
				return false
			}
			f.values[i] = T(int64(f.values[i]) + diff)
		} else {
			diff, ok := readArrayUint(stream)
			if !ok {
				return false
			}
			f.values[i] = T(uint64(f.values[i]) + diff)
		}
	}
	return true
}
