// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "github.com/zsuzuki/code-serializer/lib/bitstream"

// StringField carries a byte string of length 0..63.
type StringField struct {
	value string
}

// NewString constructs a StringField with the given initial value and
// registers it with link.
func NewString(init string, link *FieldLink) *StringField {
	f := &StringField{value: init}
	link.add(f)
	return f
}

// Get returns the field's current value.
func (f *StringField) Get() string { return f.value }

// Set assigns the field's value. Values longer than 63 bytes cannot be
// encoded; Serialize reports failure if Set was given one.
func (f *StringField) Set(value string) { f.value = value }

func (f *StringField) IsBool() bool      { return false }
func (f *StringField) IsSeparator() bool { return false }
func (f *StringField) ByteSize() int     { return len(f.value) }
func (f *StringField) ArrayLen() int     { return 1 }

func (f *StringField) Equal(other Field) bool {
	o, ok := other.(*StringField)
	return ok && f.value == o.value
}

func (f *StringField) Copy(other Field) {
	if o, ok := other.(*StringField); ok {
		f.value = o.value
	}
}

func (f *StringField) Serialize(stream *bitstream.Stream) bool {
	return writeString(stream, f.value)
}

// SerializeDiff writes the unchanged marker if base holds the same
// string, otherwise the full encoding.
func (f *StringField) SerializeDiff(stream *bitstream.Stream, base Field) bool {
	o, ok := base.(*StringField)
	if !ok {
		return false
	}
	if f.value == o.value {
		return stream.WriteBits(baseZero, baseBits)
	}
	return o.Serialize(stream)
}

func (f *StringField) Deserialize(stream *bitstream.Stream) bool {
	v, ok := readString(stream)
	if !ok {
		return false
	}
	f.value = v
	return true
}

func (f *StringField) DeserializeDiff(stream *bitstream.Stream) bool {
	base, ok := stream.ReadBits(baseBits)
	if !ok {
		return false
	}
	if base == baseZero {
		return true
	}
	if base != baseOther {
		return false
	}

	length, ok := stream.ReadBits(sizeBits)
	if !ok {
		return false
	}
	if length == 0 {
		f.value = ""
		return true
	}
	stream.AlignByte()
	buf := make([]byte, length)
	for i := range buf {
		b, ok := stream.ReadByte()
		if !ok {
			return false
		}
		buf[i] = b
	}
	f.value = string(buf)
	return true
}
