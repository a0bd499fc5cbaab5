// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitblock

import (
	"testing"

	"github.com/zsuzuki/code-serializer/lib/bitstream"
)

type bit1 struct {
	A int32
	B int32
}

type bit2 struct {
	A int32
	B int32
	C int32
}

func TestRoundTripSameShape(t *testing.T) {
	in := []bit1{{A: 1, B: 2}, {A: -3, B: 4}, {A: 0, B: 0}}

	s := bitstream.New(64)
	if !Encode(s, in) {
		t.Fatal("Encode failed")
	}
	s.Reset()

	out, ok := Decode[bit1](s, 8)
	if !ok {
		t.Fatal("Decode failed")
	}
	if len(out) != len(in) {
		t.Fatalf("got %d elements, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("element %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestDecodeTruncatesToCapacity(t *testing.T) {
	in := []bit1{{1, 2}, {3, 4}, {5, 6}}

	s := bitstream.New(64)
	if !Encode(s, in) {
		t.Fatal("Encode failed")
	}
	s.Reset()

	out, ok := Decode[bit1](s, 2)
	if !ok {
		t.Fatal("Decode failed")
	}
	if len(out) != 2 {
		t.Fatalf("got %d elements, want 2", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Errorf("got %+v, want first two of %+v", out, in)
	}
}

// TestDecodeNarrowerReader writes bit2 (12 bytes, 3 words) elements and
// decodes them as the narrower bit1 (8 bytes, 2 words): the reader
// keeps each element's first two words and skips the third.
func TestDecodeNarrowerReader(t *testing.T) {
	in := []bit2{{A: 10, B: 20, C: 30}, {A: 40, B: 50, C: 60}}

	s := bitstream.New(64)
	if !Encode(s, in) {
		t.Fatal("Encode failed")
	}
	s.Reset()

	out, ok := Decode[bit1](s, 8)
	if !ok {
		t.Fatal("Decode failed")
	}
	if len(out) != len(in) {
		t.Fatalf("got %d elements, want %d", len(out), len(in))
	}
	for i := range in {
		want := bit1{A: in[i].A, B: in[i].B}
		if out[i] != want {
			t.Errorf("element %d: got %+v, want %+v", i, out[i], want)
		}
	}
}

// TestDecodeWiderReader writes bit1 (2 words) elements and decodes them
// as the wider bit2 (3 words): the reader's extra field stays zero.
func TestDecodeWiderReader(t *testing.T) {
	in := []bit1{{A: 7, B: 8}, {A: -9, B: 10}}

	s := bitstream.New(64)
	if !Encode(s, in) {
		t.Fatal("Encode failed")
	}
	s.Reset()

	out, ok := Decode[bit2](s, 8)
	if !ok {
		t.Fatal("Decode failed")
	}
	if len(out) != len(in) {
		t.Fatalf("got %d elements, want %d", len(out), len(in))
	}
	for i := range in {
		want := bit2{A: in[i].A, B: in[i].B, C: 0}
		if out[i] != want {
			t.Errorf("element %d: got %+v, want %+v", i, out[i], want)
		}
	}
}

func TestEncodeRejectsOversizedElement(t *testing.T) {
	type tooBig struct {
		data [40]byte
	}
	s := bitstream.New(256)
	if Encode(s, []tooBig{{}}) {
		t.Fatal("Encode should reject a 40-byte element")
	}
	if s.Tell() != 0 {
		t.Fatal("Encode should leave the stream untouched on rejection")
	}
}

func TestEncodeRejectsMisalignedElement(t *testing.T) {
	type misaligned struct {
		data [6]byte
	}
	s := bitstream.New(256)
	if Encode(s, []misaligned{{}}) {
		t.Fatal("Encode should reject an element whose size is not a multiple of 4")
	}
}
