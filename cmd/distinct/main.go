// Distinct - a qualitative colour palette generator
//
// Distinct selects palettes of maximally distinguishable colours,
// optionally accounting for colour vision deficiencies, a background
// colour, and colours that are already in use.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/distinct/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
