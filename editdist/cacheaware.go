// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"math"

	"cloudeng.io/bio/nucleotide"
)

// CacheAware fills the table in square blocks of K x K cells where
// K = ceil(sqrt(Z/2)) and Z is the capacity, in table elements, of the
// targeted cache (see WithCacheSize). Skipped bytes are removed before
// the table is allocated so that every row and column corresponds to a
// base. Blocks, and the cells within a block, are visited in row-major
// order which guarantees that the diagonal, left and upper neighbours of
// every cell are final before it is evaluated.
type CacheAware struct {
	opts options
	k    int
}

// NewCacheAware returns a new instance of CacheAware.
func NewCacheAware(opts ...Option) *CacheAware {
	o := newOptions(opts)
	return &CacheAware{opts: o, k: blockSize(o.cacheSize)}
}

// blockSize returns ceil(sqrt(z/2)), with a minimum of 1.
func blockSize(z int) int {
	k := int(math.Ceil(math.Sqrt(float64(z) / 2)))
	if k < 1 {
		return 1
	}
	return k
}

// Name implements Engine.
func (e *CacheAware) Name() string {
	return CacheAwareEngine
}

// BlockSize returns K.
func (e *CacheAware) BlockSize() int {
	return e.k
}

// Distance implements Engine.
func (e *CacheAware) Distance(a, b []byte) (int64, error) {
	p, err := e.opts.newProblem(a, b, true)
	if err != nil {
		return 0, err
	}
	m, n := p.dims()
	t, err := newTable(m+1, n+1, 0)
	if err != nil {
		return 0, err
	}
	e.opts.logger.Debug("edit distance", "engine", CacheAwareEngine, "rows", m+1, "cols", n+1, "block", e.k, "swapped", p.swapped)
	fillBlocked(t, p.x, p.y, e.k)
	return t.at(m, n), nil
}

// fillBlocked fills a prefix table for x and y, neither of which may
// contain skipped bytes: cell (i, j) is the distance between x[:i]
// and y[:j].
func fillBlocked(t *table, x, y []nucleotide.Base, k int) {
	m, n := len(x), len(y)
	cols, c := t.cols, t.cells
	for i := 1; i <= m; i++ {
		c[i*cols] = int64(i) * InsertionCost
	}
	for j := 1; j <= n; j++ {
		c[j] = int64(j) * InsertionCost
	}
	for bi := 1; bi <= m; bi += k {
		iEnd := min(bi+k, m+1)
		for bj := 1; bj <= n; bj += k {
			jEnd := min(bj+k, n+1)
			for i := bi; i < iEnd; i++ {
				xi := x[i-1]
				row, above := i*cols, (i-1)*cols
				for j := bj; j < jEnd; j++ {
					c[row+j] = min(
						Substitution(xi, y[j-1])+c[above+j-1],
						InsertionCost+c[above+j],
						InsertionCost+c[row+j-1])
				}
			}
		}
	}
}
