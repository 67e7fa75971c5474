// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"fmt"
	"sort"
	"strings"
)

// Engine represents an implementation of the edit distance computation.
type Engine interface {
	// Name returns the name the engine is registered under.
	Name() string
	// Distance returns the edit distance between a and b. Neither a
	// nor b is modified. An error is returned if the alignment table
	// cannot be allocated or if a configured checker rejects either
	// sequence.
	Distance(a, b []byte) (int64, error)
}

// Names of the available engines.
const (
	NaiveEngine          = "naive"
	CacheAwareEngine     = "cache-aware"
	CacheObliviousEngine = "cache-oblivious"
	RecursiveEngine      = "recursive"
)

var registry = map[string]func(...Option) Engine{
	NaiveEngine:          func(opts ...Option) Engine { return NewNaive(opts...) },
	CacheAwareEngine:     func(opts ...Option) Engine { return NewCacheAware(opts...) },
	CacheObliviousEngine: func(opts ...Option) Engine { return NewCacheOblivious(opts...) },
	RecursiveEngine:      func(opts ...Option) Engine { return NewRecursive(opts...) },
}

// Engines returns the names of all available engines in sorted order.
func Engines() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// New returns the named engine configured with the supplied options.
func New(name string, opts ...Option) (Engine, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q, not one of: %v", name, strings.Join(Engines(), ", "))
	}
	return fn(opts...), nil
}

// Distance returns the edit distance between a and b computed using
// the naive engine and default options.
func Distance(a, b []byte) (int64, error) {
	return NewNaive().Distance(a, b)
}
