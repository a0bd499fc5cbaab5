// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "github.com/zsuzuki/code-serializer/lib/bitstream"

// BoolField carries one logical bit of state.
type BoolField struct {
	value bool
}

// NewBool constructs a BoolField with the given initial value and
// registers it with link.
func NewBool(init bool, link *FieldLink) *BoolField {
	f := &BoolField{value: init}
	link.add(f)
	return f
}

// Get returns the field's current value.
func (f *BoolField) Get() bool { return f.value }

// Set assigns the field's value.
func (f *BoolField) Set(value bool) { f.value = value }

func (f *BoolField) IsBool() bool      { return true }
func (f *BoolField) IsSeparator() bool { return false }
func (f *BoolField) ByteSize() int     { return 0 }
func (f *BoolField) ArrayLen() int     { return 0 }

func (f *BoolField) Equal(other Field) bool {
	o, ok := other.(*BoolField)
	return ok && f.value == o.value
}

func (f *BoolField) Copy(other Field) {
	if o, ok := other.(*BoolField); ok {
		f.value = o.value
	}
}

func (f *BoolField) Serialize(stream *bitstream.Stream) bool {
	return writeBool(stream, f.value)
}

// SerializeDiff writes base's value: a bool has no delta encoding, so
// the diff stream carries base's full state directly, the same value
// DeserializeDiff will assign on the receiving end.
func (f *BoolField) SerializeDiff(stream *bitstream.Stream, base Field) bool {
	o, ok := base.(*BoolField)
	if !ok {
		return false
	}
	return writeBool(stream, o.value)
}

func (f *BoolField) Deserialize(stream *bitstream.Stream) bool {
	v, ok := readBool(stream)
	if !ok {
		return false
	}
	f.value = v
	return true
}

func (f *BoolField) DeserializeDiff(stream *bitstream.Stream) bool {
	return f.Deserialize(stream)
}
