// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nyxtools/evtpack"
)

func newCompressCmd(appCfg *cfg) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <in> <out>",
		Short: "Compress a file into an evtpack frame",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}
}

func runCompress(inPath, outPath string) error {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("evtpack: reading %s: %w", inPath, err)
	}

	start := time.Now()
	out, err := evtpack.Compress(src)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("file", inPath).Int("src_len", len(src)).Msg("compress failed")
		return fmt.Errorf("evtpack: compressing %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("evtpack: writing %s: %w", outPath, err)
	}

	log.Info().
		Str("file", inPath).
		Int("src_len", len(src)).
		Int("out_len", len(out)).
		Dur("elapsed", elapsed).
		Msg("compressed")

	return nil
}
