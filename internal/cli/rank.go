// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rigidity/bitgraph"
	"github.com/katalvlaran/rigidity/rigidity"
	"github.com/katalvlaran/rigidity/sparsity"
)

const rankTool = "filter_rank"

const rankHelp = `Usage: filter_rank [dim [dof [trials]]] [-cpu]

Filter graphs based on the rank of the rigidity matrix for random realizations.
With the default arguments, the filter will keep all rigid graphs in 3D.

    dim     : the dimension of the space (default 3).
    dof     : the excessive degrees of freedom in the graph beyond the trivial
              motions (default 0). A graph passes the filter if the rigidity
              matrix has the rank dim * n - dim * (dim + 1) / 2 - dof, where n
              is the number of nodes.
    trials  : the number of realizations to check (default 1). Majority voting
              is used to determine whether or not a graph passed the filter.
    -c      : inverts the filter and returns the graphs that do not have the
              desired rank. If dof=0, this will result in all flexible graphs.
    -p      : outputs the excessive degrees of freedom along with the graphs.
    -u      : suppresses the output and only counts the graphs.

    --seed N        seed of the random realizations (default: from the clock).
    --method M      rank method, qr or svd (default qr).
    --tol X         rank tolerance relative to the largest pivot or singular
                    value; 0 selects it automatically.
    -j, --workers N number of graphs checked in parallel.
    --progress N    log a progress line every N graphs.
    -v, --verbose   verbose output.
`

// RankOptions holds the flags of filter_rank.
type RankOptions struct {
	Complement bool
	PrintDof   bool
	CountOnly  bool
	Seed       int64
	Method     string
	Tolerance  float64
	Workers    int
	Progress   int64
	Verbose    bool
}

// NewFilterRankCommand creates the filter_rank command. Argument errors print
// the usage text to stdout and exit with status 1.
//
// Flags are parsed in runFilterRank rather than by cobra so that negative
// integers such as "filter_rank 2 -1" reach the positional validation.
func NewFilterRankCommand() *cobra.Command {
	opts := &RankOptions{}

	cmd := &cobra.Command{
		Use:           "filter_rank [dim [dof [trials]]] [-cpu]",
		Short:         "Keep the graphs whose rigidity matrix has the requested rank",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// see positionalsLast
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilterRank(opts, args, cmd)
		},
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), rankHelp)
	})

	cmd.Flags().BoolVarP(&opts.Complement, "complement", "c", false, "keep the graphs without the desired rank")
	cmd.Flags().BoolVarP(&opts.PrintDof, "print-dof", "p", false, "append the excess dof of every trial")
	cmd.Flags().BoolVarP(&opts.CountOnly, "count-only", "u", false, "suppress output and only count the graphs")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed of the random realizations")
	cmd.Flags().StringVar(&opts.Method, "method", rigidity.PivotedQR.String(), "rank method (qr|svd)")
	cmd.Flags().Float64Var(&opts.Tolerance, "tol", 0, "rank tolerance relative to the largest pivot or singular value (0 = automatic)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "j", runtime.GOMAXPROCS(0), "number of graphs checked in parallel")
	cmd.Flags().Int64Var(&opts.Progress, "progress", 0, "log a progress line every N graphs (0 disables)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// positionalsLast moves every positional argument behind a "--" terminator,
// keeping their order, so that pflag never reads "-1" as a shorthand flag.
// Values of flags that take one stay next to their flag.
func positionalsLast(cmd *cobra.Command, args []string) []string {
	var flags, positionals []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case negativeInt.MatchString(a) || !strings.HasPrefix(a, "-") || a == "-":
			positionals = append(positionals, a)
		default:
			flags = append(flags, a)
			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return append(append(flags, "--"), positionals...)
}

var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

// takesValue reports whether flag token a consumes the following argument.
func takesValue(cmd *cobra.Command, a string) bool {
	if name, ok := strings.CutPrefix(a, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := cmd.Flags().Lookup(name)
		return f != nil && f.NoOptDefVal == ""
	}
	short := a[1:]
	for i := range short {
		f := cmd.Flags().ShorthandLookup(short[i : i+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return i == len(short)-1
		}
	}
	return false
}

func rankUsage(c *cobra.Command) error {
	fmt.Fprint(c.OutOrStdout(), rankHelp)
	return &exitError{code: 1}
}

// rankArgs fills dim, dof and trials in order from the positional arguments.
func rankArgs(args []string) (dim, dof, trials int, ok bool) {
	vals := []int{3, 0, 1}
	if len(args) > len(vals) {
		return 0, 0, 0, false
	}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

// rankVerdict is the per-graph outcome handed from the workers to the writer.
type rankVerdict struct {
	excess []int
	passes int
	keep   bool
}

func runFilterRank(opts *RankOptions, args []string, cmd *cobra.Command) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if err := cmd.Flags().Parse(positionalsLast(cmd, args)); err != nil {
		return rankUsage(cmd)
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		cmd.HelpFunc()(cmd, nil)
		return nil
	}

	dim, dof, trials, ok := rankArgs(cmd.Flags().Args())
	if !ok {
		return rankUsage(cmd)
	}
	switch {
	case dim < 1:
		return abort(stdout, rankTool, "dim has to be positive")
	case dof < 0:
		return abort(stdout, rankTool, "dof cannot be negative")
	case trials < 1 || trials%2 == 0:
		return abort(stdout, rankTool, "trials has to be positive and odd")
	}
	method, err := rigidity.ParseMethod(opts.Method)
	if err != nil {
		return abort(stdout, rankTool, "%v", err)
	}
	oracle, err := rigidity.New(
		rigidity.WithDim(dim),
		rigidity.WithTrials(trials),
		rigidity.WithTolerance(opts.Tolerance),
		rigidity.WithMethod(method),
	)
	if err != nil {
		return abort(stdout, rankTool, "%v", err)
	}

	seed := opts.Seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	log := newLogger(stderr, opts.Verbose)
	log.Debug("filter_rank starting",
		slog.Int("dim", dim), slog.Int("dof", dof), slog.Int("trials", trials),
		slog.String("method", method.String()),
		slog.Int64("seed", seed),
		slog.Int("workers", opts.Workers))

	total := &sparsity.Counter{
		Every:  opts.Progress,
		Report: func(total int64) { log.Info("progress", slog.Int64("graphs", total)) },
	}
	count := 0
	start := time.Now()

	err = process(cmd.Context(), cmd.InOrStdin(), opts.Workers,
		func(rec record) (rankVerdict, error) {
			g, err := bitgraph.Decode(rec.text)
			if err != nil {
				return rankVerdict{}, err
			}
			m := oracle.Measure(g, rigidity.StreamRNG(seed, uint64(rec.index)))
			passes, keep := m.Vote(func(excess int) bool { return (excess == dof) != opts.Complement })
			return rankVerdict{excess: m.ExcessDof, passes: passes, keep: keep}, nil
		},
		func(rec record, v rankVerdict) error {
			total.Add(1)
			if v.passes != 0 && v.passes != trials {
				fmt.Fprintf(stderr, ">Z majority voting was required %d/%d\n", v.passes, trials)
			}
			if !v.keep {
				return nil
			}
			count++
			if opts.CountOnly {
				return nil
			}
			var sb strings.Builder
			sb.WriteString(rec.text)
			if opts.PrintDof {
				for _, e := range v.excess {
					sb.WriteByte(' ')
					sb.WriteString(strconv.Itoa(e))
				}
			}
			sb.WriteByte('\n')
			_, err := fmt.Fprint(stdout, sb.String())
			return err
		})
	if err != nil {
		return abort(stderr, rankTool, "%v", err)
	}

	elapsed := time.Since(start)
	log.Debug("filter_rank done", slog.Int64("graphs", total.Total()), slog.Duration("elapsed", elapsed))
	fmt.Fprintf(stderr, ">Z %d graphs passed rank filter in %.2f sec\n", count, elapsed.Seconds())
	return nil
}
