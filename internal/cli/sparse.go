// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rigidity/bitgraph"
	"github.com/katalvlaran/rigidity/sparsity"
)

const sparseTool = "filter_sparse"

// SparseOptions holds the flags of filter_sparse.
type SparseOptions struct {
	CountOnly bool
	Strategy  string // "bitmask" | "combination" | "pebble" | "auto"
	Workers   int
	Progress  int64
	Verbose   bool
}

// ValidSparseStrategies lists the accepted --strategy values.
var ValidSparseStrategies = []string{"bitmask", "combination", "pebble", "auto"}

// NewFilterSparseCommand creates the filter_sparse command.
func NewFilterSparseCommand() *cobra.Command {
	opts := &SparseOptions{}

	cmd := &cobra.Command{
		Use:   "filter_sparse K L N [-u]",
		Short: "Keep the (K,L)-sparse graphs of a graph6 stream",
		Long: `Read graph6 lines from stdin and keep the graphs in which every subgraph
on more than N vertices spans at most K·n - L edges.

K and L are positive integers or fractions a/b. Passing lines are echoed
to stdout; a summary line is written to stderr when the input ends.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilterSparse(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.CountOnly, "count-only", "u", false, "suppress output and only count the sparse graphs")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "bitmask", "subset walk (bitmask|combination|pebble|auto)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", runtime.GOMAXPROCS(0), "number of graphs checked in parallel")
	cmd.Flags().Int64Var(&opts.Progress, "progress", 0, "log a progress line every N graphs (0 disables)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// sparseArgs parses the positional K, L and N.
func sparseArgs(args []string) (k, l sparsity.Rational, n int, msg string) {
	if len(args) < 3 {
		return k, l, 0, "K, L, and N are mandatory arguments"
	}
	if len(args) > 3 {
		return k, l, 0, fmt.Sprintf("unexpected argument %q", args[3])
	}
	k, err := sparsity.ParseRational(args[0])
	if err != nil || k.Num < 1 {
		return k, l, 0, "K has to be a positive integer or fraction"
	}
	l, err = sparsity.ParseRational(args[1])
	if err != nil || l.Num < 1 {
		return k, l, 0, "L has to be a positive integer or fraction"
	}
	n, err = strconv.Atoi(args[2])
	if err != nil || n < 1 {
		return k, l, 0, "N has to be a positive integer"
	}
	return k, l, n, ""
}

func sparseStrategy(opts *SparseOptions, k, l sparsity.Rational, n int) (sparsity.Strategy, error) {
	sel := []sparsity.Option{sparsity.WithK(k), sparsity.WithL(l), sparsity.WithMinVertices(n)}
	if opts.Strategy != "auto" {
		kind, err := sparsity.ParseKind(opts.Strategy)
		if err != nil || kind == sparsity.KindNone || kind == sparsity.KindHenneberg {
			return nil, fmt.Errorf("invalid strategy %q: must be one of %v", opts.Strategy, ValidSparseStrategies)
		}
		sel = append(sel, sparsity.WithKind(kind))
	}
	return sparsity.Select(sel...)
}

func runFilterSparse(opts *SparseOptions, args []string, cmd *cobra.Command) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	k, l, n, msg := sparseArgs(args)
	if msg != "" {
		return abort(stderr, sparseTool, "%s", msg)
	}
	s, err := sparseStrategy(opts, k, l, n)
	if err != nil {
		return abort(stderr, sparseTool, "%v", err)
	}

	log := newLogger(stderr, opts.Verbose)
	log.Debug("filter_sparse starting",
		slog.String("params", s.Params().String()),
		slog.String("strategy", s.Kind().String()),
		slog.Int("workers", opts.Workers))

	total := &sparsity.Counter{
		Every:  opts.Progress,
		Report: func(total int64) { log.Info("progress", slog.Int64("graphs", total)) },
	}
	passed := 0
	start := time.Now()

	err = process(cmd.Context(), cmd.InOrStdin(), opts.Workers,
		func(rec record) (bool, error) {
			g, err := bitgraph.Decode(rec.text)
			if err != nil {
				return false, err
			}
			return sparsity.IsSparse(s, g), nil
		},
		func(rec record, sparse bool) error {
			total.Add(1)
			if !sparse {
				return nil
			}
			passed++
			if opts.CountOnly {
				return nil
			}
			_, err := io.WriteString(stdout, rec.text+"\n")
			return err
		})
	if err != nil {
		return abort(stderr, sparseTool, "%v", err)
	}

	log.Debug("filter_sparse done", slog.Duration("elapsed", time.Since(start)))
	fmt.Fprintf(stderr, ">Z %d/%d graphs were sparse (K,L,N) = (%s,%s,%d)\n", passed, total.Total(), k, l, n)
	return nil
}
