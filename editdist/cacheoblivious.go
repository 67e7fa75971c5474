// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"math/bits"

	"cloudeng.io/sync/errgroup"
)

// CacheOblivious evaluates the suffix table by recursively halving the
// longer side of a rectangular sub-problem until both of its sides are
// below a threshold (see WithThreshold), at which point the rectangle is
// filled directly. No cache size is required.
//
// The half nearer to (M, N) is always completed before the other half
// since the cells along their shared edge are read by the second half.
// If WithConcurrency is used, large sub-problems are instead split into
// quadrants: the quadrant nearest (M, N) first, the two off-diagonal
// quadrants, which never read from each other, concurrently and finally
// the remaining quadrant.
type CacheOblivious struct {
	opts  options
	depth int
}

// NewCacheOblivious returns a new instance of CacheOblivious.
func NewCacheOblivious(opts ...Option) *CacheOblivious {
	o := newOptions(opts)
	return &CacheOblivious{
		opts:  o,
		depth: bits.Len(uint(o.concurrency - 1)),
	}
}

// Name implements Engine.
func (e *CacheOblivious) Name() string {
	return CacheObliviousEngine
}

// Distance implements Engine.
func (e *CacheOblivious) Distance(a, b []byte) (int64, error) {
	p, err := e.opts.newProblem(a, b, false)
	if err != nil {
		return 0, err
	}
	m, n := p.dims()
	t, err := newTable(m+1, n+1, NotYetComputed)
	if err != nil {
		return 0, err
	}
	e.opts.logger.Debug("edit distance", "engine", CacheObliviousEngine, "rows", m+1, "cols", n+1, "threshold", e.opts.threshold, "parallel-depth", e.depth, "swapped", p.swapped)
	s := &subproblem{t: t, p: p, threshold: e.opts.threshold}
	if err := s.fill(rect{0, m + 1, 0, n + 1}, e.depth); err != nil {
		return 0, err
	}
	return t.at(0, 0), nil
}

// rect represents rows [r0, r1) and columns [c0, c1).
type rect struct {
	r0, r1, c0, c1 int
}

// splitRows returns the halves of r, the one nearer (M, N) first.
func (r rect) splitRows() (first, second rect) {
	mid := (r.r0 + r.r1) / 2
	return rect{mid, r.r1, r.c0, r.c1}, rect{r.r0, mid, r.c0, r.c1}
}

// splitCols returns the halves of r, the one nearer (M, N) first.
func (r rect) splitCols() (first, second rect) {
	mid := (r.c0 + r.c1) / 2
	return rect{r.r0, r.r1, mid, r.c1}, rect{r.r0, r.r1, r.c0, mid}
}

// quadrants returns the quadrants of r in dependency order: near must
// be completed first, lower and right may then be computed in parallel
// and far must be computed last.
func (r rect) quadrants() (near, lower, right, far rect) {
	rm, cm := (r.r0+r.r1)/2, (r.c0+r.c1)/2
	near = rect{rm, r.r1, cm, r.c1}
	lower = rect{rm, r.r1, r.c0, cm}
	right = rect{r.r0, rm, cm, r.c1}
	far = rect{r.r0, rm, r.c0, cm}
	return
}

type subproblem struct {
	t         *table
	p         problem
	threshold int
}

func (s *subproblem) fill(r rect, depth int) error {
	nr, nc := r.r1-r.r0, r.c1-r.c0
	if nr <= 0 || nc <= 0 {
		return nil
	}
	if nr < s.threshold && nc < s.threshold {
		if err := s.t.ready(r.r0, r.r1, r.c0, r.c1); err != nil {
			return err
		}
		sweep(s.t, s.p.x, s.p.y, r.r0, r.r1, r.c0, r.c1)
		return nil
	}
	if depth > 0 && nr >= 2*s.threshold && nc >= 2*s.threshold {
		return s.fillParallel(r, depth)
	}
	var first, second rect
	if nr > nc {
		first, second = r.splitRows()
	} else {
		first, second = r.splitCols()
	}
	if err := s.fill(first, depth); err != nil {
		return err
	}
	return s.fill(second, depth)
}

func (s *subproblem) fillParallel(r rect, depth int) error {
	near, lower, right, far := r.quadrants()
	if err := s.fill(near, depth-1); err != nil {
		return err
	}
	var g errgroup.T
	g.Go(func() error {
		return s.fill(lower, depth-1)
	})
	g.Go(func() error {
		return s.fill(right, depth-1)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return s.fill(far, depth-1)
}
