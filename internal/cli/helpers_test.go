// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
)

// fixtureLines mixes rigid, flexible and overbraced graphs:
// triangle, K4, P4, K4 minus an edge, C4, bowtie, K33, prism, K5, K23.
var fixtureLines = []string{"Bw", "C~", "Ch", "Cz", "Cl", "DxK", "EFz_", "E{Sw", "D~{", "DFw"}

type runResult struct {
	code   int
	stdout string
	stderr string
}

// run executes cmd through Execute with the given stdin.
func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := Execute(cmd, args)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func input(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func assertGolden(t *testing.T, name string, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
