// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import (
	"unsafe"

	"github.com/zsuzuki/code-serializer/lib/bitstream"
)

// IntegerField carries a fixed-width signed or unsigned integer.
type IntegerField[T Integer] struct {
	value T
}

// NewInteger constructs an IntegerField with the given initial value
// and registers it with link.
func NewInteger[T Integer](init T, link *FieldLink) *IntegerField[T] {
	f := &IntegerField[T]{value: init}
	link.add(f)
	return f
}

// Get returns the field's current value.
func (f *IntegerField[T]) Get() T { return f.value }

// Set assigns the field's value.
func (f *IntegerField[T]) Set(value T) { f.value = value }

func (f *IntegerField[T]) IsBool() bool      { return false }
func (f *IntegerField[T]) IsSeparator() bool { return false }
func (f *IntegerField[T]) ByteSize() int     { return int(unsafe.Sizeof(f.value)) }
func (f *IntegerField[T]) ArrayLen() int     { return 1 }

func (f *IntegerField[T]) Equal(other Field) bool {
	o, ok := other.(*IntegerField[T])
	return ok && f.value == o.value
}

func (f *IntegerField[T]) Copy(other Field) {
	if o, ok := other.(*IntegerField[T]); ok {
		f.value = o.value
	}
}

func (f *IntegerField[T]) Serialize(stream *bitstream.Stream) bool {
	return serializeNumber(stream, f.value)
}

func (f *IntegerField[T]) SerializeDiff(stream *bitstream.Stream, base Field) bool {
	o, ok := base.(*IntegerField[T])
	if !ok {
		return false
	}
	return serializeNumberDiff(stream, f.value, o.value)
}

func (f *IntegerField[T]) Deserialize(stream *bitstream.Stream) bool {
	v, ok := deserializeNumber[T](stream)
	if !ok {
		return false
	}
	f.value = v
	return true
}

func (f *IntegerField[T]) DeserializeDiff(stream *bitstream.Stream) bool {
	v, ok := deserializeNumberDiff(stream, f.value)
	if !ok {
		return false
	}
	f.value = v
	return true
}
