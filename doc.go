// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

/*
Package evtpack implements a small, self-delimiting back-reference
compressor for short byte payloads (event blobs, scripts, save-data
fragments — anything comfortably under 64KiB).

The format packs literal/match flags 8-to-a-byte ahead of their elements,
and tries two fixed window/length configurations per call, keeping
whichever produced the shorter frame:

	out, err := evtpack.Compress(payload)
	if err != nil {
		// ErrInputTooLarge or ErrCapacityExceeded
	}

There is no corresponding exported Decompress: decoding this format is not
part of this package's surface (see cmd/evtpack for a CLI that inspects
frame headers without fully decoding them). The wire layout is fully
specified by doc comments on Compress and its helpers, so an independent
decoder is straightforward to write against it.

# Frame layout

	[0:2]               main body length, little-endian uint16
	[2:2+bodyLen]       zero or more full packets (1 header byte + 8 elements)
	[2+bodyLen]         terminator/addendum header byte
	...                 (addendum length + relocated packet header + elements
	                    + trailing tag, if any)

See encodeTrial and terminateTrial in packet.go for how each field is written.
*/
package evtpack
