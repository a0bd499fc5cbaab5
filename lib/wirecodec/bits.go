// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import (
	"unsafe"

	"github.com/zsuzuki/code-serializer/lib/bitstream"
)

// BitsField carries the same fixed-width storage as [IntegerField], but
// exposes per-bit Set/Get accessors for treating the value as a bit set.
type BitsField[T Integer] struct {
	value T
}

// NewBits constructs a BitsField with the given initial value and
// registers it with link.
func NewBits[T Integer](init T, link *FieldLink) *BitsField[T] {
	f := &BitsField[T]{value: init}
	link.add(f)
	return f
}

// Get returns the field's raw current value.
func (f *BitsField[T]) Get() T { return f.value }

// Set assigns the field's raw value.
func (f *BitsField[T]) Set(value T) { f.value = value }

// SetBit sets or clears bit within the field's value. Out-of-range bit
// indices (>= 8*sizeof(T)) are ignored.
func (f *BitsField[T]) SetBit(bit uint, flag bool) {
	if int(bit) >= integerBits[T]() {
		return
	}
	mask := T(1) << bit
	if flag {
		f.value |= mask
	} else {
		f.value &^= mask
	}
}

// GetBit reports whether bit is set within the field's value.
// Out-of-range bit indices (>= 8*sizeof(T)) report false.
func (f *BitsField[T]) GetBit(bit uint) bool {
	if int(bit) >= integerBits[T]() {
		return false
	}
	return f.value&(T(1)<<bit) != 0
}

func (f *BitsField[T]) IsBool() bool      { return false }
func (f *BitsField[T]) IsSeparator() bool { return false }
func (f *BitsField[T]) ByteSize() int     { return int(unsafe.Sizeof(f.value)) }
func (f *BitsField[T]) ArrayLen() int     { return 1 }

func (f *BitsField[T]) Equal(other Field) bool {
	o, ok := other.(*BitsField[T])
	return ok && f.value == o.value
}

func (f *BitsField[T]) Copy(other Field) {
	if o, ok := other.(*BitsField[T]); ok {
		f.value = o.value
	}
}

func (f *BitsField[T]) Serialize(stream *bitstream.Stream) bool {
	return serializeNumber(stream, f.value)
}

func (f *BitsField[T]) SerializeDiff(stream *bitstream.Stream, base Field) bool {
	o, ok := base.(*BitsField[T])
	if !ok {
		return false
	}
	return serializeNumberDiff(stream, f.value, o.value)
}

func (f *BitsField[T]) Deserialize(stream *bitstream.Stream) bool {
	v, ok := deserializeNumber[T](stream)
	if !ok {
		return false
	}
	f.value = v
	return true
}

func (f *BitsField[T]) DeserializeDiff(stream *bitstream.Stream) bool {
	v, ok := deserializeNumberDiff(stream, f.value)
	if !ok {
		return false
	}
	f.value = v
	return true
}
