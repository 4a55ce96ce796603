// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package evtpack

// scratchSize is the fixed-capacity scratch buffer size backing one trial.
// A trial never legitimately writes anywhere near this much (its own
// output bound caps it well below 0x10000), but the addendum relocation
// step briefly writes a few bytes past out_pos before the buffer is
// truncated to its final length, so the scratch stays oversized the same
// way the reference implementation's fixed char[0x10000] arrays do.
const scratchSize = 0x10000

// abortedTrialLength is the sentinel length used internally to mark a
// trial that aborted (exceeded its output bound) before completing, so the
// selection step in compress.go can treat it as "worse than anything".
const abortedTrialLength = 0x10000

// encodeTrial runs the packet encoder for one configuration against src,
// writing packets of up to 8 literal/match elements until src is exhausted
// or the trial would exceed bound bytes of output.
//
// On success it returns the frame bytes (length == len(frame)) and ok=true.
// On abort it returns (nil, abortedTrialLength, false); the caller must not
// read the returned slice.
func encodeTrial(src []byte, cfg trialConfig, bound int) (frame []byte, length int, ok bool) {
	buf := make([]byte, scratchSize)
	srcPos := 0
	outPos := 2 // first two bytes are reserved for the main body length

	for {
		if outPos >= bound {
			return nil, abortedTrialLength, false
		}

		headerPos := outPos
		buf[headerPos] = 0
		outPos++

		for bit := 0; bit < 8; bit++ {
			if srcPos == len(src) {
				finalLen := terminatedLength(headerPos, outPos, bit)
				if finalLen > bound {
					return nil, abortedTrialLength, false
				}
				terminateTrial(buf, headerPos, outPos, bit, cfg)
				return buf[:finalLen], finalLen, true
			}

			start, matchLen := findBestMatch(src, srcPos, cfg)
			if matchLen > 2 {
				buf[headerPos] |= 1 << uint(bit)

				offset := srcPos - start
				packed := uint32(offset) | (uint32(matchLen-3) << cfg.lengthShift)
				buf[outPos] = truncByte(int(packed))
				buf[outPos+1] = truncByte(int(packed >> 8))
				outPos += 2
				srcPos += matchLen
				continue
			}

			buf[outPos] = src[srcPos]
			outPos++
			srcPos++
		}
	}
}

// terminatedLength computes the final frame length for the termination
// that occurred at bit within the packet started at headerPos, given the
// output cursor outPos at the moment src ran out.
func terminatedLength(headerPos, outPos, bit int) int {
	if bit == 0 {
		return headerPos + 1
	}
	return outPos + 4
}

// terminateTrial writes the clean-boundary or mid-packet addendum
// terminator into buf and fixes up the main body length field, per spec
// §4.2. buf must have at least outPos+4 bytes of capacity.
func terminateTrial(buf []byte, headerPos, outPos, bit int, cfg trialConfig) {
	if bit == 0 {
		// Clean boundary: the packet just started was never used.
		buf[headerPos] = cfg.tagByte
	} else {
		// Mid-packet: the partial packet becomes the addendum.
		mask := truncByte((0xFF << uint(bit)) & 0xFF)
		buf[headerPos] |= mask

		// Shift the partial packet (header + its written elements) forward
		// by 3 bytes to make room for the addendum's length prefix. Walk
		// high-to-low so the shift is correct under the overlap.
		addendumSize := outPos - headerPos
		for j := addendumSize - 1; j >= 0; j-- {
			buf[headerPos+3+j] = buf[headerPos+j]
		}

		buf[headerPos] = cfg.tagByte | truncByte(bit)

		total := outPos + 3
		buf[headerPos+1] = truncByte(total)
		buf[headerPos+2] = truncByte(total >> 8)

		buf[outPos+3] = cfg.tagByte
	}

	bodyLen := headerPos - 2
	buf[0] = truncByte(bodyLen)
	buf[1] = truncByte(bodyLen >> 8)
}
