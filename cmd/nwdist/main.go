// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command nwdist computes the Needleman-Wunsch edit distance between two
// nucleotide sequences taken from byte ranges of files, or given on the
// command line.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are accepted by all of the commands that compute a distance.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config       string                `subcmd:"config,,'YAML configuration file, flags that are explicitly set override values read from it'"`
	Engine       stringFlag            `subcmd:"engine,,'edit distance engine: naive, cache-aware, cache-oblivious or recursive'"`
	CacheSize    intFlag               `subcmd:"cache-size,,'cache capacity, in table elements, used by the cache-aware engine'"`
	Threshold    intFlag               `subcmd:"threshold,,'size below which the cache-oblivious engine stops subdividing'"`
	Concurrency  intFlag               `subcmd:"concurrency,,'number of goroutines that the cache-oblivious engine may use'"`
	InvalidBytes stringFlag            `subcmd:"invalid-bytes,,'handling of bytes that are neither bases nor whitespace: ignore, warn or abort'"`
	Preview      intFlag               `subcmd:"preview,,'number of leading and trailing bytes of each sequence to display'"`
	Profile      profiling.ProfileFlag `subcmd:"profile,,'write a profile to a file, in <profile>:<filename> format, may be repeated'"`
}

type configFlags struct {
	Config string `subcmd:"config,,'YAML configuration file to be validated and displayed'"`
}

const rangeArgs = "<file1> <begin1> <length1> <file2> <begin2> <length2>"

func init() {
	app := &application{out: os.Stdout, errOut: os.Stderr}

	distanceFlagSet := subcmd.NewFlagSet()
	distanceFlagSet.MustRegisterFlagStruct(&CommonFlags{}, nil, nil)
	compareFlagSet := subcmd.NewFlagSet()
	compareFlagSet.MustRegisterFlagStruct(&CommonFlags{}, nil, nil)
	literalFlagSet := subcmd.NewFlagSet()
	literalFlagSet.MustRegisterFlagStruct(&CommonFlags{}, nil, nil)
	configFlagSet := subcmd.NewFlagSet()
	configFlagSet.MustRegisterFlagStruct(&configFlags{}, nil, nil)

	distanceCmd := subcmd.NewCommand("distance", distanceFlagSet, app.distance, subcmd.ExactlyNumArguments(6))
	distanceCmd.Document(`compute the edit distance between two sequences read from files.

Each sequence is specified by a file name, the offset of its first byte
and its length. A FASTA comment line at the given offset is skipped and
a length that extends beyond the end of the file is truncated. A preview
of each sequence is written to stderr and the distance to stdout.`, rangeArgs)

	compareCmd := subcmd.NewCommand("compare", compareFlagSet, app.compare, subcmd.ExactlyNumArguments(6))
	compareCmd.Document(`compute the edit distance between two sequences read from files using every engine concurrently and report the distance and time taken by each. It fails if any two engines disagree.`, rangeArgs)

	literalCmd := subcmd.NewCommand("literal", literalFlagSet, app.literal, subcmd.ExactlyNumArguments(2))
	literalCmd.Document(`compute the edit distance between two sequences given as arguments.`, "<sequence1> <sequence2>")

	configCmd := subcmd.NewCommand("config", configFlagSet, app.config, subcmd.WithoutArguments())
	configCmd.Document(`describe the YAML configuration file and, if one is specified, display the configuration it results in.`)

	cmdSet = subcmd.NewCommandSet(compareCmd, configCmd, distanceCmd, literalCmd)
	cmdSet.Document(`compute Needleman-Wunsch edit distances between nucleotide sequences.

Bytes other than the nucleotides AaCcGgTtUu and the unknown base Nn are
skipped. An insertion or deletion costs 2 and a substitution costs 1, a
substitution involving an unknown base always costs 1.`)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	cmdutil.HandleSignals(func() {
		cancel()
		cmdutil.Exit("interrupted")
	}, os.Interrupt)
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
