// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package example

import "github.com/zsuzuki/code-serializer/lib/wirecodec"

// RecordV1 is the original schema generation: a flag, a counter, a
// name, an age, a fixed-size points array, a set of signed per-point
// offsets, a bit set, and a signed code.
type RecordV1 struct {
	link    *wirecodec.FieldLink
	Enabled *wirecodec.BoolField
	Count   *wirecodec.IntegerField[uint32]
	Name    *wirecodec.StringField
	Age     *wirecodec.IntegerField[uint8]
	Points  *wirecodec.IntegerArrayField[uint32]
	Deltas  *wirecodec.IntegerArrayField[int32]
	Bits    *wirecodec.BitsField[uint32]
	Code    *wirecodec.IntegerField[int16]
}

// NewRecordV1 constructs a zero-valued RecordV1 with Points sized to
// 16 elements and Deltas sized to 4.
func NewRecordV1() *RecordV1 {
	link := wirecodec.NewFieldLink()
	r := &RecordV1{link: link}
	r.Enabled = wirecodec.NewBool(false, link)
	r.Count = wirecodec.NewInteger[uint32](0, link)
	r.Name = wirecodec.NewString("", link)
	r.Age = wirecodec.NewInteger[uint8](0, link)
	r.Points = wirecodec.NewIntegerArray[uint32](16, 0, link)
	r.Deltas = wirecodec.NewIntegerArray[int32](4, 0, link)
	r.Bits = wirecodec.NewBits[uint32](0, link)
	r.Code = wirecodec.NewInteger[int16](0, link)
	return r
}

func (r *RecordV1) Link() *wirecodec.FieldLink { return r.link }

// RecordV2 appends a version separator and a trailing Number field to
// RecordV1's shape. The two records are independent FieldLinks — V2
// does not embed V1 — so that RecordV1 and RecordV2 values can each be
// decoded from the other's bytes via the shared field prefix.
type RecordV2 struct {
	link    *wirecodec.FieldLink
	Enabled *wirecodec.BoolField
	Count   *wirecodec.IntegerField[uint32]
	Name    *wirecodec.StringField
	Age     *wirecodec.IntegerField[uint8]
	Points  *wirecodec.IntegerArrayField[uint32]
	Deltas  *wirecodec.IntegerArrayField[int32]
	Bits    *wirecodec.BitsField[uint32]
	Code    *wirecodec.IntegerField[int16]
	Number  *wirecodec.IntegerField[uint32]
}

// NewRecordV2 constructs a RecordV2 with Number defaulted to 100.
func NewRecordV2() *RecordV2 {
	link := wirecodec.NewFieldLink()
	r := &RecordV2{link: link}
	r.Enabled = wirecodec.NewBool(false, link)
	r.Count = wirecodec.NewInteger[uint32](0, link)
	r.Name = wirecodec.NewString("", link)
	r.Age = wirecodec.NewInteger[uint8](0, link)
	r.Points = wirecodec.NewIntegerArray[uint32](16, 0, link)
	r.Deltas = wirecodec.NewIntegerArray[int32](4, 0, link)
	r.Bits = wirecodec.NewBits[uint32](0, link)
	r.Code = wirecodec.NewInteger[int16](0, link)
	wirecodec.NewVersion(link)
	r.Number = wirecodec.NewInteger[uint32](100, link)
	return r
}

func (r *RecordV2) Link() *wirecodec.FieldLink { return r.link }
