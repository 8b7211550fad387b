// SPDX-License-Identifier: MIT

// Command filter_sparse keeps the (K,L)-sparse graphs of a graph6 stream.
package main

import (
	"os"

	"github.com/katalvlaran/rigidity/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewFilterSparseCommand(), os.Args[1:]))
}
