// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirecodec

import "testing"

func TestBitsFieldSetBitGetBit(t *testing.T) {
	link := NewFieldLink()
	f := NewBits[uint32](0, link)

	if f.GetBit(3) {
		t.Fatal("bit 3 should start clear")
	}

	f.SetBit(3, true)
	if !f.GetBit(3) {
		t.Error("bit 3 should be set after SetBit(3, true)")
	}
	if f.Get() != 1<<3 {
		t.Errorf("Get() = %#x, want %#x", f.Get(), uint32(1<<3))
	}

	f.SetBit(0, true)
	if f.Get() != 1<<3|1 {
		t.Errorf("Get() = %#x, want %#x", f.Get(), uint32(1<<3|1))
	}

	f.SetBit(3, false)
	if f.GetBit(3) {
		t.Error("bit 3 should be clear after SetBit(3, false)")
	}
	if !f.GetBit(0) {
		t.Error("bit 0 should remain set after clearing bit 3")
	}
}

func TestBitsFieldOutOfRangeBitIgnored(t *testing.T) {
	link := NewFieldLink()
	f := NewBits[uint8](0xFF, link)

	f.SetBit(8, true) // out of range for an 8-bit field, must be a no-op
	if f.Get() != 0xFF {
		t.Errorf("Get() = %#x after out-of-range SetBit, want 0xff unchanged", f.Get())
	}

	if f.GetBit(8) {
		t.Error("GetBit(8) should report false for an out-of-range bit")
	}
}
