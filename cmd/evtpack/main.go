// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

// Command evtpack is a small driver around the evtpack library: it
// compresses files, inspects compressed frame headers, and batch-processes
// a directory of event blobs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
