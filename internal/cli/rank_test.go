// SPDX-License-Identifier: MIT

package cli

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planeLines omits K5 and K23 from fixtureLines.
var planeLines = fixtureLines[:8]

var summaryLine = regexp.MustCompile(`(?m)^>Z (\d+) graphs passed rank filter in \d+\.\d\d sec$`)

func assertRankSummary(t *testing.T, stderr, count string) {
	t.Helper()
	m := summaryLine.FindStringSubmatch(stderr)
	require.NotNil(t, m, "summary line missing from %q", stderr)
	assert.Equal(t, count, m[1])
}

func TestFilterRankRigidInPlane(t *testing.T) {
	for _, method := range []string{"qr", "svd"} {
		t.Run(method, func(t *testing.T) {
			res := run(t, NewFilterRankCommand(), input(planeLines...), "2", "--seed", "7", "--method", method)
			require.Equal(t, 0, res.code, res.stdout+res.stderr)
			assertGolden(t, "filter_rank_plane", res.stdout)
			assertRankSummary(t, res.stderr, "5")
			assert.NotContains(t, res.stderr, "majority voting")
		})
	}
}

func TestFilterRankComplementWithDof(t *testing.T) {
	res := run(t, NewFilterRankCommand(), input(planeLines...), "2", "-cp", "--seed", "7")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assertGolden(t, "filter_rank_flexible", res.stdout)
	assertRankSummary(t, res.stderr, "3")
}

func TestFilterRankTrials(t *testing.T) {
	res := run(t, NewFilterRankCommand(), input(planeLines...), "2", "1", "3", "-p", "--seed", "11")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assertGolden(t, "filter_rank_dof1", res.stdout)
	assertRankSummary(t, res.stderr, "2")
}

func TestFilterRankDefaultsToSpace(t *testing.T) {
	// Triangle and K4 are rigid in 3D; P4 and K4 minus an edge are not.
	res := run(t, NewFilterRankCommand(), input("Bw", "C~", "Ch", "Cz"), "--seed", "3")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Equal(t, "Bw\nC~\n", res.stdout)
	assertRankSummary(t, res.stderr, "2")
}

func TestFilterRankCountOnly(t *testing.T) {
	res := run(t, NewFilterRankCommand(), input(planeLines...), "2", "-cpu", "--seed", "7")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Empty(t, res.stdout)
	assertRankSummary(t, res.stderr, "3")
}

func TestFilterRankIndependentOfWorkers(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, planeLines...)
	}
	one := run(t, NewFilterRankCommand(), input(lines...), "2", "0", "3", "-p", "--seed", "5", "-j", "1")
	many := run(t, NewFilterRankCommand(), input(lines...), "2", "0", "3", "-p", "--seed", "5", "-j", "8")
	require.Equal(t, 0, one.code)
	require.Equal(t, 0, many.code)
	assert.Equal(t, one.stdout, many.stdout)
	assertRankSummary(t, many.stderr, "200")
}

func TestFilterRankMajorityVoting(t *testing.T) {
	// A relative tolerance near the median of the triangle's last pivot makes
	// roughly half of the trials lose a rank, so trials disagree on most lines.
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "Bw"
	}
	res := run(t, NewFilterRankCommand(), input(lines...), "2", "0", "3", "-p", "--seed", "9", "--tol", "0.29")
	require.Equal(t, 0, res.code, res.stderr)

	split := regexp.MustCompile(`(?m)^>Z majority voting was required ([12])/3$`)
	votes := split.FindAllStringSubmatch(res.stderr, -1)
	require.NotEmpty(t, votes, "expected at least one split vote")
	narrow := 0
	for _, v := range votes {
		if v[1] == "2" {
			narrow++
		}
	}

	kept := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	if res.stdout == "" {
		kept = nil
	}
	mixed := 0
	for _, line := range kept {
		fields := strings.Fields(line)
		require.Len(t, fields, 4, line)
		assert.Equal(t, "Bw", fields[0])
		zeros := 0
		for _, f := range fields[1:] {
			if f == "0" {
				zeros++
			}
		}
		assert.GreaterOrEqual(t, zeros, 2, "kept lines carry a majority of rigid trials: %q", line)
		if zeros == 2 {
			mixed++
		}
	}
	assert.Equal(t, narrow, mixed, "every 2/3 vote keeps its line")
	assertRankSummary(t, res.stderr, strconv.Itoa(len(kept)))
}

func TestFilterRankValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero dim", []string{"0"}, ">E filter_rank: dim has to be positive\n"},
		{"negative dof", []string{"2", "-1"}, ">E filter_rank: dof cannot be negative\n"},
		{"negative dof among flags", []string{"-p", "2", "-3", "--seed", "4"}, ">E filter_rank: dof cannot be negative\n"},
		{"negative dof after terminator", []string{"--", "2", "-1"}, ">E filter_rank: dof cannot be negative\n"},
		{"negative dim", []string{"-2"}, ">E filter_rank: dim has to be positive\n"},
		{"even trials", []string{"2", "0", "2"}, ">E filter_rank: trials has to be positive and odd\n"},
		{"zero trials", []string{"2", "0", "0"}, ">E filter_rank: trials has to be positive and odd\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, NewFilterRankCommand(), input(planeLines...), tc.args...)
			assert.Equal(t, 1, res.code)
			assert.Equal(t, tc.want, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestFilterRankUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"two"}},
		{"too many positionals", []string{"2", "0", "1", "5"}},
		{"unknown shorthand", []string{"-x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, NewFilterRankCommand(), input(planeLines...), tc.args...)
			assert.Equal(t, 1, res.code)
			assert.Equal(t, rankHelp, res.stdout, "usage is printed once, without a trailing blank line")
			assert.Empty(t, res.stderr)
		})
	}
}

func TestFilterRankBadMethod(t *testing.T) {
	res := run(t, NewFilterRankCommand(), "", "--method", "lu")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, ">E filter_rank: ")
	assert.Contains(t, res.stdout, "lu")
}

func TestFilterRankMalformedLine(t *testing.T) {
	res := run(t, NewFilterRankCommand(), input("Bw", "~???", "C~"), "2", "--seed", "1")
	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Bw\n", res.stdout)
	assert.Contains(t, res.stderr, ">E filter_rank: line 2: ")
}

func TestFilterRankHelp(t *testing.T) {
	res := run(t, NewFilterRankCommand(), "", "--help")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, rankHelp, res.stdout)
	assert.Contains(t, res.stdout, "rank tolerance relative to the largest pivot")

	flag := NewFilterRankCommand().Flags().Lookup("tol")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "relative")
	assert.NotContains(t, flag.Usage, "absolute")
}

func TestPositionalsLast(t *testing.T) {
	cmd := NewFilterRankCommand()
	tests := []struct {
		args []string
		want []string
	}{
		{nil, []string{"--"}},
		{[]string{"2", "-1"}, []string{"--", "2", "-1"}},
		{[]string{"-cpu", "3", "0", "5"}, []string{"-cpu", "--", "3", "0", "5"}},
		{[]string{"2", "--seed", "-7", "1"}, []string{"--seed", "-7", "--", "2", "1"}},
		{[]string{"--seed=5", "2", "-j", "4"}, []string{"--seed=5", "-j", "4", "--", "2"}},
		{[]string{"-cj", "4", "2"}, []string{"-cj", "4", "--", "2"}},
		{[]string{"-j4", "2"}, []string{"-j4", "--", "2"}},
		{[]string{"2", "--", "-1", "-p"}, []string{"--", "2", "-1", "-p"}},
		{[]string{"-x", "2"}, []string{"-x", "--", "2"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, positionalsLast(cmd, tc.args), "%q", tc.args)
	}
}

func TestRankArgs(t *testing.T) {
	dim, dof, trials, ok := rankArgs(nil)
	require.True(t, ok)
	assert.Equal(t, []int{3, 0, 1}, []int{dim, dof, trials})

	dim, dof, trials, ok = rankArgs([]string{"2", "1"})
	require.True(t, ok)
	assert.Equal(t, []int{2, 1, 1}, []int{dim, dof, trials})

	_, _, _, ok = rankArgs([]string{"2", "x"})
	assert.False(t, ok)
}
