// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package evtpack

import "errors"

// Sentinel errors for this package-private decoder. It exists only to
// support the test suite (see the file comment below), so these stay
// unexported and local to the _test.go file rather than living in
// errors.go alongside the public API errors.
var (
	errDecodeInputOverrun    = errors.New("evtpack: decode read past end of frame")
	errDecodeLookBehindRange = errors.New("evtpack: decode match references before start of output")
	errDecodeMalformedHeader = errors.New("evtpack: decode found a malformed terminator/addendum header")
)

// This file is test-only infrastructure: an independent decoder for the
// frame Compress produces, used to verify the round-trip and golden-vector
// properties in compress_test.go and property_test.go. evtpack does not
// export a Decompress function (see doc.go) — this exists purely so the
// test suite can check Compress's output against an implementation of §6
// written the other direction (header byte in, elements out) rather than
// just re-deriving what Compress itself would produce.

// decodeFrame decodes a frame produced by Compress (or a bit-compatible
// encoder) back into the original bytes. The configuration (and therefore
// the match length shift) is inferred once from the terminator/addendum
// header's high bits: 0xC0 means configuration 0 (shift 11), anything else
// means configuration 1 (shift 12).
func decodeFrame(frame []byte) ([]byte, error) {
	if len(frame) < 3 {
		return nil, errDecodeInputOverrun
	}

	bodyLen := int(frame[0]) | int(frame[1])<<8
	headerPos := 2 + bodyLen
	if headerPos >= len(frame) {
		return nil, errDecodeInputOverrun
	}

	shift, tag := configFromTag(frame[headerPos])

	var out []byte
	pos := 2
	for pos < headerPos {
		header := frame[pos]
		pos++

		for bit := 0; bit < 8 && pos < headerPos; bit++ {
			var err error
			out, pos, err = decodeElement(frame, out, pos, header, bit, shift)
			if err != nil {
				return nil, err
			}
		}
	}

	return decodeTerminator(frame, headerPos, shift, tag, out)
}

// decodeTerminator decodes the terminator/addendum header at headerPos and
// appends any addendum elements to out. On a clean boundary (a == 0) the
// terminator byte itself is the frame's last byte. On an addendum (a > 0),
// the original partial packet (header byte + its a elements) was relocated
// 3 bytes forward by the encoder, so the real per-element flags live at
// frame[headerPos+3], not in the terminator byte's low bits (those carry
// only the element count a).
func decodeTerminator(frame []byte, headerPos int, shift uint32, tag byte, out []byte) ([]byte, error) {
	term := frame[headerPos]
	a := int(term & 0x07)

	if a == 0 {
		if term != tag {
			return nil, errDecodeMalformedHeader
		}
		return out, nil
	}

	if headerPos+4 > len(frame) {
		return nil, errDecodeInputOverrun
	}
	// frame[headerPos+1 : headerPos+3] is the total-length marker; it is a
	// diagnostic field (used by cmd/evtpack inspect), not needed to decode.
	addendumHeader := frame[headerPos+3]
	pos := headerPos + 4

	for bit := 0; bit < a; bit++ {
		var err error
		out, pos, err = decodeElement(frame, out, pos, addendumHeader, bit, shift)
		if err != nil {
			return nil, err
		}
	}

	if pos >= len(frame) {
		return nil, errDecodeInputOverrun
	}
	if frame[pos] != tag {
		return nil, errDecodeMalformedHeader
	}

	return out, nil
}

// decodeElement decodes element bit of a packet whose header byte is
// header, appending the decoded bytes to out. It returns the advanced
// frame cursor.
func decodeElement(frame []byte, out []byte, pos int, header byte, bit int, shift uint32) ([]byte, int, error) {
	isMatch := header&(1<<uint(bit)) != 0
	if !isMatch {
		if pos >= len(frame) {
			return nil, 0, errDecodeInputOverrun
		}
		return append(out, frame[pos]), pos + 1, nil
	}

	if pos+2 > len(frame) {
		return nil, 0, errDecodeInputOverrun
	}

	packed := uint32(frame[pos]) | uint32(frame[pos+1])<<8
	offset := int(packed & ((1 << shift) - 1))
	length := int(packed>>shift) + 3

	next, err := copyBackRefAppend(out, offset, length)
	if err != nil {
		return nil, 0, err
	}

	return next, pos + 2, nil
}

// configFromTag infers (lengthShift, tagByte) from the terminator/addendum
// header byte's high bits, per §6: 0xC0 high bits -> configuration 0
// (shift 11), anything else -> configuration 1 (shift 12).
func configFromTag(b byte) (shift uint32, tag byte) {
	if b&0xC0 == 0xC0 {
		return 11, 0xC0
	}
	return 12, 0x00
}

// copyBackRefAppend appends length bytes copied from offset bytes before
// the end of out, growing out in place. If offset < length, LZ semantics
// require the newly-appended bytes to become valid source for the
// remainder of the match, so the copy grows exponentially rather than
// doing a single contiguous copy.
func copyBackRefAppend(out []byte, offset, length int) ([]byte, error) {
	start := len(out) - offset
	if start < 0 {
		return nil, errDecodeLookBehindRange
	}

	if offset >= length {
		return append(out, out[start:start+length]...), nil
	}

	result := append(out, out[start:start+offset]...)
	copied := offset
	for copied < length {
		n := min(length-copied, copied)
		result = append(result, result[len(result)-copied:len(result)-copied+n]...)
		copied += n
	}

	return result, nil
}
