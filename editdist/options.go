// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"io"
	"log/slog"

	"cloudeng.io/bio/nucleotide"
)

const (
	// DefaultCacheSize is the default cache capacity, in table elements,
	// used by CacheAware.
	DefaultCacheSize = 4096

	// DefaultThreshold is the default size below which CacheOblivious
	// stops subdividing.
	DefaultThreshold = 32
)

type options struct {
	table       *nucleotide.Table
	checker     *nucleotide.Checker
	cacheSize   int
	threshold   int
	concurrency int
	logger      *slog.Logger
}

// Option represents an option accepted by the engine constructors.
// Options that are not relevant to a given engine are ignored.
type Option func(*options)

// WithTable sets the classification table, nucleotide.Standard is
// used by default.
func WithTable(t *nucleotide.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithChecker requests that both sequences be checked for malformed
// bytes before the distance is computed. Any error returned by the
// checker is returned by Distance.
func WithChecker(c *nucleotide.Checker) Option {
	return func(o *options) {
		o.checker = c
	}
}

// WithCacheSize sets the capacity, in table elements, of the cache
// targeted by CacheAware. Values <= 0 select DefaultCacheSize.
func WithCacheSize(elements int) Option {
	return func(o *options) {
		o.cacheSize = elements
	}
}

// WithThreshold sets the span below which CacheOblivious fills
// sub-problems directly. Values < 2 select DefaultThreshold.
func WithThreshold(span int) Option {
	return func(o *options) {
		o.threshold = span
	}
}

// WithConcurrency sets the number of goroutines CacheOblivious may use.
// Values <= 1 result in a single threaded computation.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.table == nil {
		o.table = nucleotide.Standard
	}
	if o.cacheSize <= 0 {
		o.cacheSize = DefaultCacheSize
	}
	if o.threshold < 2 {
		o.threshold = DefaultThreshold
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
