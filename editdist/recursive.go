// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"fmt"

	"cloudeng.io/errors"
)

// MaxRecursionDepth is the largest M+N accepted by Recursive. The
// recursion is M+N calls deep and goroutine stacks are limited to 1GB
// on 64 bit systems.
const MaxRecursionDepth = 1 << 20

// ErrTooDeep is returned by Recursive when the combined length of the
// sequences exceeds MaxRecursionDepth.
var ErrTooDeep = errors.New("recursion too deep")

// Recursive evaluates phi(0, 0) top-down, memoizing every phi(i, j)
// in the table so that each is computed exactly once. The recursion
// depth is bounded by M+N which must not exceed MaxRecursionDepth.
type Recursive struct {
	opts options
}

// NewRecursive returns a new instance of Recursive.
func NewRecursive(opts ...Option) *Recursive {
	return &Recursive{opts: newOptions(opts)}
}

// Name implements Engine.
func (e *Recursive) Name() string {
	return RecursiveEngine
}

// Distance implements Engine.
func (e *Recursive) Distance(a, b []byte) (int64, error) {
	p, err := e.opts.newProblem(a, b, false)
	if err != nil {
		return 0, err
	}
	m, n := p.dims()
	if m+n > MaxRecursionDepth {
		return 0, fmt.Errorf("%w: %v + %v exceeds %v", ErrTooDeep, m, n, MaxRecursionDepth)
	}
	t, err := newTable(m+1, n+1, NotYetComputed)
	if err != nil {
		return 0, err
	}
	e.opts.logger.Debug("edit distance", "engine", RecursiveEngine, "rows", m+1, "cols", n+1, "swapped", p.swapped)
	mc := &memo{t: t, p: p}
	return mc.phi(0, 0), nil
}

type memo struct {
	t *table
	p problem
}

func (mc *memo) phi(i, j int) int64 {
	if v := mc.t.at(i, j); v != NotYetComputed {
		return v
	}
	x, y := mc.p.x, mc.p.y
	m, n := len(x), len(y)
	var v int64
	switch {
	case i == m && j == n:
		v = 0
	case i == m:
		v = gap(y[j]) + mc.phi(i, j+1)
	case j == n:
		v = gap(x[i]) + mc.phi(i+1, j)
	default:
		// A skipped byte has a single successor.
		xi, yj := x[i], y[j]
		switch {
		case !xi.IsBase():
			v = mc.phi(i+1, j)
		case !yj.IsBase():
			v = mc.phi(i, j+1)
		default:
			v = step(xi, yj, mc.phi(i+1, j+1), mc.phi(i+1, j), mc.phi(i, j+1))
		}
	}
	mc.t.set(i, j, v)
	return v
}
