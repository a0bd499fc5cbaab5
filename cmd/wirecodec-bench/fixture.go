// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fixture mirrors the example.RecordV2 field shape in a plain,
// YAML-friendly form (no pointers, no FieldLink). Points and Deltas
// are left out of the file format and always defaulted to their
// construction-time zero values; listing their elements by hand in
// every fixture file would add noise without exercising anything the
// other fields don't already cover.
type fixture struct {
	Enabled bool   `yaml:"enabled"`
	Count   uint32 `yaml:"count"`
	Name    string `yaml:"name"`
	Age     uint8  `yaml:"age"`
	Bits    uint32 `yaml:"bits"`
	Code    int16  `yaml:"code"`
	Number  uint32 `yaml:"number"`
}

// loadFixture reads a single YAML fixture file. There is no fallback
// path and no auto-discovery: the caller must name the file.
func loadFixture(path string) (fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fixture{}, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return f, nil
}

// cborMirror is the plain struct marshaled through lib/codec to
// produce the CBOR comparison baseline. Its cbor tags follow the same
// internal-only convention lib/codec documents.
type cborMirror struct {
	Enabled bool     `cbor:"enabled"`
	Count   uint32   `cbor:"count"`
	Name    string   `cbor:"name"`
	Age     uint8    `cbor:"age"`
	Points  []uint32 `cbor:"points"`
	Deltas  []int32  `cbor:"deltas"`
	Bits    uint32   `cbor:"bits"`
	Code    int16    `cbor:"code"`
	Number  uint32   `cbor:"number,omitempty"`
}
