// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nyxtools/evtpack"
)

func newBatchCmd(appCfg *cfg) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <dir>",
		Short: "Compress every regular file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], appCfg)
		},
	}
}

func runBatch(dir string, appCfg *cfg) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("evtpack: reading directory %s: %w", dir, err)
	}

	var (
		compressed int
		skipped    int
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		inPath := filepath.Join(dir, entry.Name())
		outPath := inPath + appCfg.outputSuffix

		if err := runCompress(inPath, outPath); err != nil {
			if !errors.Is(err, evtpack.ErrCapacityExceeded) && !errors.Is(err, evtpack.ErrInputTooLarge) {
				return err
			}

			if appCfg.onOverflow == "fail" {
				return err
			}

			log.Warn().Err(err).Str("file", inPath).Msg("skipping file")
			skipped++
			continue
		}

		compressed++
	}

	log.Info().Int("compressed", compressed).Int("skipped", skipped).Msg("batch complete")
	return nil
}
