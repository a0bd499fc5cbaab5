// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package example composes [wirecodec] fields into two generations of
// the same record shape, demonstrating round-trip, diff, and
// cross-version decode behavior end to end.
package example
