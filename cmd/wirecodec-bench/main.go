// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// wirecodec-bench loads a record fixture from a YAML file, encodes it
// through the bit-oriented wire codec, and reports how that compares
// in size against a CBOR encoding of the same data and against that
// CBOR encoding compressed with LZ4, along with a content fingerprint
// of the wire-codec bytes.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/spf13/pflag"

	"github.com/zsuzuki/code-serializer/example"
	"github.com/zsuzuki/code-serializer/lib/binhash"
	"github.com/zsuzuki/code-serializer/lib/bitstream"
	"github.com/zsuzuki/code-serializer/lib/codec"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var fixturePath string
	var capacityBytes int
	var iterations int
	var verbose bool

	flagSet := pflag.NewFlagSet("wirecodec-bench", pflag.ContinueOnError)
	flagSet.StringVar(&fixturePath, "fixtures", os.Getenv("WIRECODEC_FIXTURES"), "path to a YAML fixture file (or set WIRECODEC_FIXTURES)")
	flagSet.IntVar(&capacityBytes, "capacity", 4096, "scratch buffer capacity in bytes")
	flagSet.IntVar(&iterations, "iterations", 1, "repeat the encode this many times (sizes are reported for one encoding)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log CBOR diagnostic notation")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		flagSet.PrintDefaults()
		return nil
	}
	if fixturePath == "" {
		return fmt.Errorf("--fixtures is required (or set WIRECODEC_FIXTURES)")
	}
	if iterations < 1 {
		iterations = 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	f, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	record := example.NewRecordV2()
	record.Enabled.Set(f.Enabled)
	record.Count.Set(f.Count)
	record.Name.Set(f.Name)
	record.Age.Set(f.Age)
	record.Bits.Set(f.Bits)
	record.Code.Set(f.Code)
	record.Number.Set(f.Number)

	stream := bitstream.New(capacityBytes)
	if !record.Link().Serialize(stream) {
		return fmt.Errorf("encoding %s exceeded the %d-byte scratch buffer", fixturePath, capacityBytes)
	}
	wireBytes := stream.Bytes()

	for i := 1; i < iterations; i++ {
		stream.Reset()
		if !record.Link().Serialize(stream) {
			return fmt.Errorf("encoding %s exceeded the %d-byte scratch buffer on iteration %d", fixturePath, capacityBytes, i+1)
		}
	}

	mirror := cborMirror{
		Enabled: f.Enabled,
		Count:   f.Count,
		Name:    f.Name,
		Age:     f.Age,
		Points:  make([]uint32, record.Points.Len()),
		Deltas:  make([]int32, record.Deltas.Len()),
		Bits:    f.Bits,
		Code:    f.Code,
		Number:  f.Number,
	}
	for i := range mirror.Points {
		mirror.Points[i] = record.Points.At(i)
	}
	for i := range mirror.Deltas {
		mirror.Deltas[i] = record.Deltas.At(i)
	}

	cborBytes, err := codec.Marshal(mirror)
	if err != nil {
		return fmt.Errorf("marshaling CBOR comparison baseline: %w", err)
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(cborBytes)))
	var compressor lz4.Compressor
	compressedLen, err := compressor.CompressBlock(cborBytes, compressed)
	if err != nil {
		return fmt.Errorf("compressing CBOR baseline: %w", err)
	}
	// An incompressible block is reported as 0 by CompressBlock; treat
	// that as "no smaller than the input" rather than a failure.
	if compressedLen == 0 {
		compressedLen = len(cborBytes)
	}

	digest := binhash.HashBytes(wireBytes)

	logger.Info("encoded fixture",
		"fixture", fixturePath,
		"wire_bytes", len(wireBytes),
		"cbor_bytes", len(cborBytes),
		"cbor_lz4_bytes", compressedLen,
		"wire_fingerprint", binhash.FormatDigest(digest),
	)

	if verbose {
		notation, err := codec.Diagnose(cborBytes)
		if err != nil {
			return fmt.Errorf("diagnosing CBOR baseline: %w", err)
		}
		logger.Info("cbor diagnostic notation", "notation", notation)
	}

	return nil
}
