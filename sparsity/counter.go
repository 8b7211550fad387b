// SPDX-License-Identifier: MIT

package sparsity

import "sync/atomic"

// Counter counts graphs and calls Report every Every graphs. It is safe for
// concurrent use; Report runs on the goroutine that crossed the boundary.
type Counter struct {
	total atomic.Int64

	// Every is the reporting period; 0 disables reporting.
	Every int64
	// Report receives the running total.
	Report func(total int64)
}

// Add counts delta graphs and returns the new total.
func (c *Counter) Add(delta int64) int64 {
	total := c.total.Add(delta)
	if c.Every > 0 && c.Report != nil && total/c.Every != (total-delta)/c.Every {
		c.Report(total)
	}
	return total
}

// Total returns the number of graphs counted so far.
func (c *Counter) Total() int64 { return c.total.Load() }
