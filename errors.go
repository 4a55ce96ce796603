// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package evtpack

import "errors"

// Sentinel errors returned by Compress.
var (
	// ErrInvalidInput stands for an input buffer that cannot be read as a
	// contiguous byte view. Compress does not return it: a Go []byte is
	// always such a view.
	ErrInvalidInput = errors.New("evtpack: invalid input buffer")

	// ErrInputTooLarge is returned when len(input) exceeds the 16-bit main
	// body length field's representable range (0xFFFD bytes, the practical
	// ceiling once header and addendum overhead are accounted for).
	ErrInputTooLarge = errors.New("evtpack: input too large to represent in a 16-bit body length")

	// ErrCapacityExceeded is returned when both configuration trials abort
	// at the 0x1000-byte output bound. The reference implementation this
	// format was distilled from reads a sentinel-length buffer verbatim in
	// this situation; this package refuses to reproduce that and surfaces
	// an error instead.
	ErrCapacityExceeded = errors.New("evtpack: both trial configurations exceeded the output capacity")
)
