// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "github.com/zsuzuki/code-serializer/lib/bitstream"

// Base bits: the 2-bit discriminator that precedes every top-level field.
const (
	baseZero    = 0x0 // zero-valued number, unchanged diff, or false
	baseOne     = 0x1 // true (numbers never use this code)
	baseVersion = 0x2 // version separator
	baseOther   = 0x3 // extended header follows
)

const (
	baseBits = 2
	sizeBits = 6
	maxBytes = (1 << sizeBits) - 1 // longest string/size field: 63 bytes
)

// writeUint writes an unsigned number using the base-bits/size-bits
// scheme: zero takes the discriminator-only fast path (2 bits), anything
// else spells out its bit width before the value.
func writeUint(s *bitstream.Stream, v uint64, bits int) bool {
	if v == 0 {
		return s.WriteBits(baseZero, baseBits)
	}
	if !s.WriteBits(baseOther, baseBits) {
		return false
	}
	if !s.WriteBits(uint64(bits), sizeBits) {
		return false
	}
	return s.WriteBits(v, bits)
}

// readUint is the inverse of writeUint. A size field of 0 in scalar
// context is a decode failure (size == 0 is reserved for array headers).
func readUint(s *bitstream.Stream) (uint64, bool) {
	base, ok := s.ReadBits(baseBits)
	if !ok {
		return 0, false
	}
	if base == baseZero {
		return 0, true
	}
	if base != baseOther {
		return 0, false
	}
	width, ok := s.ReadBits(sizeBits)
	if !ok || width == 0 {
		return 0, false
	}
	return s.ReadBits(int(width))
}

// writeInt is writeUint's signed counterpart, using sign/magnitude
// encoding for the value bits.
func writeInt(s *bitstream.Stream, v int64, bits int) bool {
	if v == 0 {
		return s.WriteBits(baseZero, baseBits)
	}
	if !s.WriteBits(baseOther, baseBits) {
		return false
	}
	if !s.WriteBits(uint64(bits), sizeBits) {
		return false
	}
	return s.WriteSigned(v, bits)
}

func readInt(s *bitstream.Stream) (int64, bool) {
	base, ok := s.ReadBits(baseBits)
	if !ok {
		return 0, false
	}
	if base == baseZero {
		return 0, true
	}
	if base != baseOther {
		return 0, false
	}
	width, ok := s.ReadBits(sizeBits)
	if !ok || width == 0 {
		return 0, false
	}
	return s.ReadSigned(int(width))
}

// writeBool writes the base-bits-only boolean encoding.
func writeBool(s *bitstream.Stream, v bool) bool {
	if v {
		return s.WriteBits(baseOne, baseBits)
	}
	return s.WriteBits(baseZero, baseBits)
}

func readBool(s *bitstream.Stream) (bool, bool) {
	base, ok := s.ReadBits(baseBits)
	if !ok {
		return false, false
	}
	switch base {
	case baseZero:
		return false, true
	case baseOne:
		return true, true
	default:
		return false, false
	}
}

// writeVersion writes the zero-payload version separator marker.
func writeVersion(s *bitstream.Stream) bool {
	return s.WriteBits(baseVersion, baseBits)
}

func readVersion(s *bitstream.Stream) bool {
	base, ok := s.ReadBits(baseBits)
	return ok && base == baseVersion
}

// writeString writes a byte string of length 0..63. Non-empty strings
// are padded to the next byte boundary before their bytes.
func writeString(s *bitstream.Stream, value string) bool {
	if len(value) > maxBytes {
		return false
	}
	if !s.WriteBits(baseOther, baseBits) {
		return false
	}
	if !s.WriteBits(uint64(len(value)), sizeBits) {
		return false
	}
	if len(value) == 0 {
		return true
	}
	if !s.PadToNext() {
		return false
	}
	for i := 0; i < len(value); i++ {
		if !s.WriteByte(value[i]) {
			return false
		}
	}
	return true
}

func readString(s *bitstream.Stream) (string, bool) {
	base, ok := s.ReadBits(baseBits)
	if !ok || base != baseOther {
		return "", false
	}
	length, ok := s.ReadBits(sizeBits)
	if !ok {
		return "", false
	}
	if length == 0 {
		return "", true
	}
	s.AlignByte()
	buf := make([]byte, length)
	for i := range buf {
		b, ok := s.ReadByte()
		if !ok {
			return "", false
		}
		buf[i] = b
	}
	return string(buf), true
}

// writeArrayHeader writes the "11 size=0 count-byte" shape shared by
// IntegerArray fields. The element count occupies a full byte (0..255).
func writeArrayHeader(s *bitstream.Stream, count int) bool {
	if !s.WriteBits(baseOther, baseBits) {
		return false
	}
	if !s.WriteBits(0, sizeBits) {
		return false
	}
	return s.WriteBits(uint64(count), 8)
}

func readArrayHeader(s *bitstream.Stream) (int, bool) {
	base, ok := s.ReadBits(baseBits)
	if !ok || base != baseOther {
		return 0, false
	}
	size, ok := s.ReadBits(sizeBits)
	if !ok || size != 0 {
		return 0, false
	}
	count, ok := s.ReadBits(8)
	if !ok {
		return 0, false
	}
	return int(count), true
}

// writeArrayUint writes one array element using the self-describing
// compact width scheme of §4.5: a 2-bit tag picks the smallest of four
// widths (8/16/32/64 bits total) that fits the value.
func writeArrayUint(s *bitstream.Stream, v uint64) bool {
	var tag uint64
	var valueBits int
	switch {
	case v < 1<<6:
		tag, valueBits = 0, 6
	case v < 1<<14:
		tag, valueBits = 1, 14
	case v < 1<<30:
		tag, valueBits = 2, 30
	default:
		tag, valueBits = 3, 62
	}
	if !s.WriteBits(tag, 2) {
		return false
	}
	return s.WriteBits(v, valueBits)
}

func readArrayUint(s *bitstream.Stream) (uint64, bool) {
	tag, ok := s.ReadBits(2)
	if !ok {
		return 0, false
	}
	switch tag {
	case 0:
		return s.ReadBits(6)
	case 1:
		return s.ReadBits(14)
	case 2:
		return s.ReadBits(30)
	default:
		return s.ReadBits(62)
	}
}

// writeArrayInt is writeArrayUint's signed counterpart: the tag is
// chosen from the value's magnitude, and the payload is sign/magnitude
// encoded.
func writeArrayInt(s *bitstream.Stream, v int64) bool {
	magnitude := v
	if magnitude < 0 {
		magnitude = -magnitude
	}
	var tag uint64
	var valueBits int
	switch {
	case magnitude < 1<<5:
		tag, valueBits = 0, 6
	case magnitude < 1<<13:
		tag, valueBits = 1, 14
	case magnitude < 1<<29:
		tag, valueBits = 2, 30
	default:
		tag, valueBits = 3, 62
	}
	if !s.WriteBits(tag, 2) {
		return false
	}
	return s.WriteSigned(v, valueBits)
}

func readArrayInt(s *bitstream.Stream) (int64, bool) {
	tag, ok := s.ReadBits(2)
	if !ok {
		return 0, false
	}
	switch tag {
	case 0:
		return s.ReadSigned(6)
	case 1:
		return s.ReadSigned(14)
	case 2:
		return s.ReadSigned(30)
	default:
		return s.ReadSigned(62)
	}
}
