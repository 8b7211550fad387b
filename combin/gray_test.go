// SPDX-License-Identifier: MIT

package combin_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rigidity/combin"
)

func TestGray_VisitsEverySubsetOnce(t *testing.T) {
	for n := 0; n <= 10; n++ {
		g, err := combin.NewGray(n)
		require.NoError(t, err)

		seen := map[uint64]bool{0: true}
		prev := g.Mask()
		for {
			elem, added, ok := g.Next()
			if !ok {
				break
			}
			cur := g.Mask()
			require.Equal(t, 1, bits.OnesCount64(prev^cur), "exactly one element toggles")
			require.Equal(t, uint64(1)<<uint(elem), prev^cur)
			require.Equal(t, cur&(1<<uint(elem)) != 0, added)
			require.False(t, seen[cur])
			seen[cur] = true
			prev = cur
		}
		assert.Len(t, seen, 1<<uint(n), "n=%d", n)
	}
}

func TestGray_BadSize(t *testing.T) {
	_, err := combin.NewGray(-1)
	assert.ErrorIs(t, err, combin.ErrBadSize)
	_, err = combin.NewGray(64)
	assert.ErrorIs(t, err, combin.ErrBadSize)
}
