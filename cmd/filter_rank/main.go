// SPDX-License-Identifier: MIT

// Command filter_rank keeps the graphs whose random realizations have a
// rigidity matrix of the requested rank.
package main

import (
	"os"

	"github.com/katalvlaran/rigidity/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewFilterRankCommand(), os.Args[1:]))
}
