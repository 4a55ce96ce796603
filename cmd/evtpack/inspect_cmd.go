// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print an evtpack frame's header fields without fully decoding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

// frameHeader is the set of fields readable from a frame without walking
// every packet: the main body length, the terminator position, whether the
// frame ended on a clean packet boundary or an addendum, and which of the
// two fixed configurations produced it.
type frameHeader struct {
	bodyLen       int
	terminatorPos int
	configuration int
	addendumCount int
	totalLen      int
}

func runInspect(path string) error {
	frame, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("evtpack: reading %s: %w", path, err)
	}

	hdr, err := readFrameHeader(frame)
	if err != nil {
		return fmt.Errorf("evtpack: inspecting %s: %w", path, err)
	}

	fmt.Printf("file:            %s\n", path)
	fmt.Printf("frame length:    %d\n", len(frame))
	fmt.Printf("main body length: %d\n", hdr.bodyLen)
	fmt.Printf("configuration:   %d\n", hdr.configuration)
	fmt.Printf("terminator at:   %d\n", hdr.terminatorPos)
	if hdr.addendumCount > 0 {
		fmt.Printf("addendum elements: %d\n", hdr.addendumCount)
		fmt.Printf("addendum total length: %d\n", hdr.totalLen)
	} else {
		fmt.Printf("addendum:        none (clean packet boundary)\n")
	}

	return nil
}

// readFrameHeader parses a frame's fixed-position fields using the same
// inPos-cursor style as the core package's internal field readers, without
// decoding any packet bodies.
func readFrameHeader(frame []byte) (frameHeader, error) {
	inPos := 0

	bodyLenLo, err := readFrameByte(frame, &inPos)
	if err != nil {
		return frameHeader{}, err
	}
	bodyLenHi, err := readFrameByte(frame, &inPos)
	if err != nil {
		return frameHeader{}, err
	}
	bodyLen := int(bodyLenLo) | int(bodyLenHi)<<8

	terminatorPos := 2 + bodyLen
	if terminatorPos >= len(frame) {
		return frameHeader{}, fmt.Errorf("evtpack: terminator position %d past end of %d-byte frame", terminatorPos, len(frame))
	}

	term := frame[terminatorPos]
	configuration := 1
	if term&0xC0 == 0xC0 {
		configuration = 0
	}

	hdr := frameHeader{
		bodyLen:       bodyLen,
		terminatorPos: terminatorPos,
		configuration: configuration,
	}

	a := int(term & 0x07)
	if a == 0 {
		return hdr, nil
	}

	hdr.addendumCount = a
	pos := terminatorPos + 1
	lenLo, err := readFrameByte(frame, &pos)
	if err != nil {
		return frameHeader{}, err
	}
	lenHi, err := readFrameByte(frame, &pos)
	if err != nil {
		return frameHeader{}, err
	}
	hdr.totalLen = int(lenLo) | int(lenHi)<<8

	return hdr, nil
}

// readFrameByte reads one byte from frame at *pos and advances *pos.
func readFrameByte(frame []byte, pos *int) (byte, error) {
	if *pos >= len(frame) {
		return 0, fmt.Errorf("evtpack: read past end of %d-byte frame at offset %d", len(frame), *pos)
	}
	b := frame[*pos]
	*pos++
	return b, nil
}
