// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitblock

import (
	"encoding/binary"
	"unsafe"

	"github.com/zsuzuki/code-serializer/lib/bitstream"
)

const (
	wordBits  = 3
	countBits = 13
	// maxWords is the largest element width Encode can express: 8
	// four-byte words, i.e. 32 bytes.
	maxWords = 1 << wordBits
	maxCount = (1 << countBits) - 1
)

// Encode writes data as one length-prefixed block: a header naming T's
// word width and the element count, followed by every element's raw
// bytes. T must have a size that is a positive multiple of 4 and at
// most 32 bytes; len(data) must fit in 13 bits. Encode reports false
// and leaves the stream untouched if either constraint is violated or
// a write fails.
func Encode[T any](stream *bitstream.Stream, data []T) bool {
	size := elementSize[T]()
	if size == 0 || size%4 != 0 || size/4 > maxWords {
		return false
	}
	if len(data) > maxCount {
		return false
	}

	begin := stream.Tell()
	words := size / 4
	if !stream.WriteBits(uint64(words-1), wordBits) {
		stream.Seek(begin)
		return false
	}
	if !stream.WriteBits(uint64(len(data)), countBits) {
		stream.Seek(begin)
		return false
	}

	for i := range data {
		if !writeElement(stream, &data[i], size) {
			stream.Seek(begin)
			return false
		}
	}
	return true
}

// Decode reads a block written by Encode into a slice of T, truncating
// to capacity elements if the wire holds more. If T's width differs
// from the width the block was written with, Decode adapts: extra wire
// words per element (reader narrower than writer) are skipped; missing
// wire words (reader wider than writer) leave the corresponding tail
// bytes of each element at zero. Decode reports false and leaves the
// stream positioned at its call-time offset if a read fails.
func Decode[T any](stream *bitstream.Stream, capacity int) ([]T, bool) {
	size := elementSize[T]()
	if size == 0 || size%4 != 0 {
		return nil, false
	}
	structWords := size / 4

	begin := stream.Tell()
	wordField, ok := stream.ReadBits(wordBits)
	if !ok {
		stream.Seek(begin)
		return nil, false
	}
	wireWords := int(wordField) + 1

	countField, ok := stream.ReadBits(countBits)
	if !ok {
		stream.Seek(begin)
		return nil, false
	}
	wireCount := int(countField)

	count := wireCount
	if capacity < count {
		count = capacity
	}

	takeWords := wireWords
	skipBits := 0
	if structWords < wireWords {
		takeWords = structWords
		skipBits = (wireWords - structWords) * 32
	}

	out := make([]T, count)
	for i := range out {
		if !readElement(stream, &out[i], size, takeWords) {
			stream.Seek(begin)
			return nil, false
		}
		if skipBits > 0 && !stream.Seek(stream.Tell()+skipBits) {
			stream.Seek(begin)
			return nil, false
		}
	}
	return out, true
}

func elementSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func writeElement[T any](stream *bitstream.Stream, elem *T, size int) bool {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(elem)), size)
	if size%8 == 0 {
		for off := 0; off < size; off += 8 {
			v := binary.LittleEndian.Uint64(buf[off : off+8])
			if !stream.WriteBits(v, 64) {
				return false
			}
		}
		return true
	}
	for off := 0; off < size; off += 4 {
		v := binary.LittleEndian.Uint32(buf[off : off+4])
		if !stream.WriteBits(uint64(v), 32) {
			return false
		}
	}
	return true
}

func readElement[T any](stream *bitstream.Stream, elem *T, size, words int) bool {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(elem)), size)
	for w := 0; w < words; w++ {
		v, ok := stream.ReadBits(32)
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint32(buf[w*4:w*4+4], uint32(v))
	}
	return true
}
