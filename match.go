// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package evtpack

// findBestMatch scans backward from src position p for the longest prior
// run of bytes that also occurs starting at p, within cfg's lookback range
// and bounded by cfg's max copy length.
//
// Ties are broken toward the largest (closest) start position: the update
// uses >=, not >, so later candidates in the scan win on equal length. This
// matches the reference encoder bit-for-bit and must not be "simplified" to
// a strict > update, which would pick the farthest tied match instead.
//
// The scan short-circuits as soon as a candidate's match reaches exactly
// cfg.maxCopyLength — but not when a candidate's match is merely cut short
// by running out of input (p+curLen == len(src)). Those are different
// stopping reasons: only the former means no other candidate could ever
// beat this one, so only the former ends the scan early.
func findBestMatch(src []byte, p int, cfg trialConfig) (bestStart, bestLen int) {
	if p <= 0 {
		return 0, 0
	}

	n := len(src)
	windowStart := p - int(cfg.lookbackRange)
	if windowStart < 0 {
		windowStart = 0
	}

	maxCopyLength := int(cfg.maxCopyLength)

	for start := windowStart; start < p; start++ {
		curLen := 0
		for p+curLen < n && curLen < maxCopyLength && src[start+curLen] == src[p+curLen] {
			curLen++
		}

		if curLen >= bestLen {
			bestLen = curLen
			bestStart = start
			if curLen == maxCopyLength {
				break
			}
		}
	}

	return bestStart, bestLen
}
