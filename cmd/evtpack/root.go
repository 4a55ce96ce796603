// SPDX-License-Identifier: MIT
// Copyright (c) 2026 nyxtools
// Source: github.com/nyxtools/evtpack

package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfg holds the resolved configuration for a run, bound from flags,
// environment variables (EVTPACK_*), and an optional config file via
// viper. It is populated once in newRootCmd's PersistentPreRunE.
type cfg struct {
	verbose      bool
	outputSuffix string
	onOverflow   string // "skip" or "fail"
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var appCfg cfg

	root := &cobra.Command{
		Use:   "evtpack",
		Short: "Compress and inspect evtpack event-blob frames",
		Long: `evtpack drives the evtpack library from the command line: it
compresses files into the library's self-delimiting back-reference frame
format, inspects a frame's header fields, and batch-compresses a directory
of files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v.SetEnvPrefix("EVTPACK")
			v.AutomaticEnv()
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

			if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}

			appCfg.verbose = v.GetBool("verbose")
			appCfg.outputSuffix = v.GetString("suffix")
			appCfg.onOverflow = v.GetString("on-overflow")

			level := zerolog.InfoLevel
			if appCfg.verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().Level(level)

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a config file (yaml/json/toml)")
	flags.Bool("verbose", false, "enable debug-level logging")
	flags.String("suffix", ".evt", "output file suffix used by batch")
	flags.String("on-overflow", "skip", `behavior when a file exceeds the output capacity: "skip" or "fail"`)

	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("suffix", flags.Lookup("suffix"))
	_ = v.BindPFlag("on-overflow", flags.Lookup("on-overflow"))

	root.AddCommand(newCompressCmd(&appCfg))
	root.AddCommand(newInspectCmd())
	root.AddCommand(newBatchCmd(&appCfg))

	return root
}

// log is the process-wide structured logger, configured by the root
// command's PersistentPreRunE before any subcommand runs.
var log zerolog.Logger
