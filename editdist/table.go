// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"fmt"
	"math"

	"cloudeng.io/bio/nucleotide"
	"cloudeng.io/errors"
)

const (
	// NotYetComputed marks table cells that have not been evaluated,
	// it can never be a valid distance.
	NotYetComputed int64 = -1

	// MaxCells is the largest table, in cells, that will be allocated.
	MaxCells = math.MaxInt32
)

var (
	// ErrTableTooLarge is returned when the table required for a pair
	// of sequences exceeds MaxCells.
	ErrTableTooLarge = errors.New("alignment table too large")

	// ErrDependency is returned if a cell is evaluated before the cells
	// it depends on. It indicates an implementation error.
	ErrDependency = errors.New("alignment table dependency not yet computed")
)

// table is a rows x cols grid stored as a single, row-major, slice.
type table struct {
	rows, cols int
	cells      []int64
}

func newTable(rows, cols int, initial int64) (*table, error) {
	if rows <= 0 || cols <= 0 || rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %v x %v exceeds %v cells", ErrTableTooLarge, rows, cols, MaxCells)
	}
	t := &table{
		rows:  rows,
		cols:  cols,
		cells: make([]int64, rows*cols),
	}
	if initial != 0 {
		for i := range t.cells {
			t.cells[i] = initial
		}
	}
	return t, nil
}

func (t *table) index(i, j int) int {
	return i*t.cols + j
}

func (t *table) at(i, j int) int64 {
	return t.cells[t.index(i, j)]
}

func (t *table) set(i, j int, v int64) {
	t.cells[t.index(i, j)] = v
}

// sweep fills rows [r0, r1) and columns [c0, c1) of a suffix table for
// x and y, working backwards from (r1-1, c1-1). Row len(x) and column
// len(y) are the boundary conditions. Cells in row r1 and column c1 must
// already be computed.
func sweep(t *table, x, y []nucleotide.Base, r0, r1, c0, c1 int) {
	m, n := len(x), len(y)
	cols, c := t.cols, t.cells
	for i := r1 - 1; i >= r0; i-- {
		row, below := i*cols, (i+1)*cols
		for j := c1 - 1; j >= c0; j-- {
			var v int64
			switch {
			case i == m && j == n:
				v = 0
			case i == m:
				v = gap(y[j]) + c[row+j+1]
			case j == n:
				v = gap(x[i]) + c[below+j]
			default:
				v = step(x[i], y[j], c[below+j+1], c[below+j], c[row+j+1])
			}
			c[row+j] = v
		}
	}
}

// ready returns ErrDependency if any of the cells that sweep would read
// from outside of the rectangle rows [r0, r1), columns [c0, c1) has not
// been computed.
func (t *table) ready(r0, r1, c0, c1 int) error {
	if r1 < t.rows {
		for j := c0; j <= c1 && j < t.cols; j++ {
			if t.at(r1, j) == NotYetComputed {
				return fmt.Errorf("%w: (%v, %v) needed by [%v:%v, %v:%v]", ErrDependency, r1, j, r0, r1, c0, c1)
			}
		}
	}
	if c1 < t.cols {
		for i := r0; i < r1; i++ {
			if t.at(i, c1) == NotYetComputed {
				return fmt.Errorf("%w: (%v, %v) needed by [%v:%v, %v:%v]", ErrDependency, i, c1, r0, r1, c0, c1)
			}
		}
	}
	return nil
}
