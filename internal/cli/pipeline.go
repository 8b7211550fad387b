// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// batchPerWorker lines are buffered per worker before results are
	// written; it bounds memory and output latency.
	batchPerWorker = 64

	// maxLineBytes is ample for graph6 lines with n ≤ 62.
	maxLineBytes = 1 << 16
)

// record is one input line.
type record struct {
	index int    // zero-based position in the stream
	text  string // line without its terminator
}

// process reads r line by line, runs work on up to workers lines at a time,
// and calls emit for every result in input order. emit runs on the calling
// goroutine.
//
// A work error stops the stream: results of earlier lines are emitted first,
// then the error is returned annotated with its 1-based line number.
func process[T any](ctx context.Context, r io.Reader, workers int,
	work func(record) (T, error), emit func(record, T) error,
) error {
	if workers < 1 {
		workers = 1
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	size := workers * batchPerWorker
	batch := make([]record, 0, size)
	results := make([]T, size)
	errs := make([]error, size)

	flush := func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, rec := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i], errs[i] = work(rec)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i, rec := range batch {
			if errs[i] != nil {
				return fmt.Errorf("line %d: %w", rec.index+1, errs[i])
			}
			if err := emit(rec, results[i]); err != nil {
				return err
			}
		}
		batch = batch[:0]
		return nil
	}

	for index := 0; sc.Scan(); index++ {
		batch = append(batch, record{index: index, text: strings.TrimRight(sc.Text(), "\r")})
		if len(batch) == size {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return flush()
}
