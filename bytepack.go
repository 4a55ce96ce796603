// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package evtpack

// truncByte packs a value to one byte, keeping only its low 8 bits. Callers
// pass values whose low 8 bits are the intended serialized representation
// (header masks, length-field halves); the truncation is intentional.
func truncByte(v int) byte {
	// #nosec G115 -- header/length bytes intentionally encode only the low 8 bits.
	return byte(v & 0xff)
}
