// SPDX-License-Identifier: MIT

package bitgraph

import (
	"fmt"
	"strings"
)

const (
	graph6Bias   = 63           // every graph6 byte carries value+63
	graph6Large  = 126          // first byte of the n ≥ 63 form
	graph6Header = ">>graph6<<" // optional file header
	graph6Bits   = 6            // payload bits per byte
)

// Decode parses one graph6 line. A trailing newline (LF or CRLF) and the
// optional ">>graph6<<" header are ignored.
//
// The first byte minus 63 gives n. The remaining bytes, each minus 63, supply
// six bits apiece, most significant first, listing the upper-triangular
// adjacency entries column by column: for j = 1..n-1, for i = 0..j-1.
// Padding bits in the last byte are ignored, as are bytes after the payload.
func Decode(line string) (*Graph, error) {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimPrefix(line, graph6Header)
	if line == "" {
		return nil, ErrEmptyEncoding
	}
	if line[0] == graph6Large {
		return nil, ErrUnsupportedSize
	}
	if line[0] < graph6Bias || line[0] > graph6Large {
		return nil, fmt.Errorf("Decode: header byte %#x: %w", line[0], ErrMalformed)
	}

	n := int(line[0] - graph6Bias)
	need := (n*(n-1)/2 + graph6Bits - 1) / graph6Bits
	if len(line)-1 < need {
		return nil, fmt.Errorf("Decode: n=%d needs %d data bytes, got %d: %w", n, need, len(line)-1, ErrMalformed)
	}

	rows := make([]uint64, n)
	pos, shift := 1, -1
	var data byte
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if shift < 0 {
				c := line[pos]
				if c < graph6Bias || c > graph6Large {
					return nil, fmt.Errorf("Decode: byte %d is %#x: %w", pos, c, ErrMalformed)
				}
				data = c - graph6Bias
				pos++
				shift = graph6Bits - 1
			}
			if data&(1<<uint(shift)) != 0 {
				rows[i] |= bit(j)
				rows[j] |= bit(i)
			}
			shift--
		}
	}
	return &Graph{rows: rows}, nil
}

// Encode renders g in graph6 without a trailing newline. Unused bits of the
// last byte are zero.
func Encode(g *Graph) string {
	n := g.N()
	var sb strings.Builder
	sb.Grow(1 + (n*(n-1)/2+graph6Bits-1)/graph6Bits)
	sb.WriteByte(byte(n + graph6Bias))

	var data byte
	shift := graph6Bits - 1
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if g.rows[j]&bit(i) != 0 {
				data |= 1 << uint(shift)
			}
			shift--
			if shift < 0 {
				sb.WriteByte(data + graph6Bias)
				data, shift = 0, graph6Bits-1
			}
		}
	}
	if shift != graph6Bits-1 {
		sb.WriteByte(data + graph6Bias)
	}
	return sb.String()
}
