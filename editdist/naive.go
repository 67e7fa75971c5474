// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

// Naive fills the complete suffix table, row by row, starting from
// (M, N). It is the reference against which the other engines are
// tested.
type Naive struct {
	opts options
}

// NewNaive returns a new instance of Naive.
func NewNaive(opts ...Option) *Naive {
	return &Naive{opts: newOptions(opts)}
}

// Name implements Engine.
func (e *Naive) Name() string {
	return NaiveEngine
}

// Distance implements Engine.
func (e *Naive) Distance(a, b []byte) (int64, error) {
	p, err := e.opts.newProblem(a, b, false)
	if err != nil {
		return 0, err
	}
	m, n := p.dims()
	t, err := newTable(m+1, n+1, 0)
	if err != nil {
		return 0, err
	}
	e.opts.logger.Debug("edit distance", "engine", NaiveEngine, "rows", m+1, "cols", n+1, "swapped", p.swapped)
	sweep(t, p.x, p.y, 0, m+1, 0, n+1)
	return t.at(0, 0), nil
}
