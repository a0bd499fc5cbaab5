// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "github.com/zsuzuki/code-serializer/lib/bitstream"

// VersionField is a zero-payload marker that delimits a schema
// generation within a record. It contributes no bits beyond its 2-bit
// discriminator.
type VersionField struct{}

// NewVersion constructs a VersionField and registers it with link. Add
// one to a record's FieldLink each time new fields are appended after an
// earlier, already-deployed generation.
func NewVersion(link *FieldLink) *VersionField {
	f := &VersionField{}
	link.add(f)
	return f
}

func (f *VersionField) IsBool() bool      { return false }
func (f *VersionField) IsSeparator() bool { return true }
func (f *VersionField) ByteSize() int     { return 0 }
func (f *VersionField) ArrayLen() int     { return 0 }

func (f *VersionField) Equal(other Field) bool {
	_, ok := other.(*VersionField)
	return ok
}

func (f *VersionField) Copy(Field) {}

func (f *VersionField) Serialize(stream *bitstream.Stream) bool {
	return writeVersion(stream)
}

func (f *VersionField) SerializeDiff(stream *bitstream.Stream, _ Field) bool {
	return f.Serialize(stream)
}

func (f *VersionField) Deserialize(stream *bitstream.Stream) bool {
	return readVersion(stream)
}

func (f *VersionField) DeserializeDiff(stream *bitstream.Stream) bool {
	return f.Deserialize(stream)
}
