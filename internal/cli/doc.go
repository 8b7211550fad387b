// SPDX-License-Identifier: MIT

// Package cli implements the filter_sparse and filter_rank stream filters.
//
// Both commands read one graph6 record per line from stdin and write the
// passing records to stdout in input order. Protocol lines keep the format
// the nauty tool chain expects: ">E tool: message" for fatal errors and
// ">Z ..." for summaries and diagnostics. Everything else (progress, debug
// output) goes through a slog logger on stderr.
//
// Lines are certified concurrently in batches; see process.
package cli
