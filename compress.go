// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package evtpack

// Compress encodes src into a self-delimiting back-reference frame (see the
// package doc for the wire layout). It runs two fixed configurations
// against src and returns whichever produces the shorter frame; ties favor
// configuration 0.
//
// Compress is a pure function: it holds no state across calls and is safe
// to call concurrently from multiple goroutines on independent inputs.
func Compress(src []byte) ([]byte, error) {
	// ErrInvalidInput mirrors a failure mode of the reference's buffer
	// protocol ("cannot obtain a contiguous view"); a Go []byte, including
	// a nil one, is always already such a view, so that case never fires
	// here. It is kept as a sentinel so callers wrapping non-slice sources
	// (e.g. reading through a custom io.Reader first) have a stable error
	// to map onto.
	if len(src) > maxInputLen {
		return nil, ErrInputTooLarge
	}

	cfg0 := newTrialConfig(0)
	frame0, len0, ok0 := encodeTrial(src, cfg0, outputCapacity)

	bound1 := outputCapacity
	if ok0 {
		bound1 = min(bound1, len0)
	}

	cfg1 := newTrialConfig(1)
	frame1, len1, ok1 := encodeTrial(src, cfg1, bound1)

	switch {
	case ok0 && ok1:
		if len0 <= len1 {
			return frame0, nil
		}
		return frame1, nil

	case ok0:
		return frame0, nil

	case ok1:
		return frame1, nil

	default:
		return nil, ErrCapacityExceeded
	}
}
