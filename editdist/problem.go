// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import (
	"cloudeng.io/bio/nucleotide"
)

// problem holds the classified sequences for a single call, x is always
// the longer of the two inputs.
type problem struct {
	x, y    []nucleotide.Base
	swapped bool
}

// relabel returns a and b ordered such that the first is the longer,
// ties leave the order unchanged.
func relabel(a, b []byte) (x, y []byte, swapped bool) {
	if len(a) >= len(b) {
		return a, b, false
	}
	return b, a, true
}

// check applies the configured checker, if any, to both sequences.
func (o *options) check(a, b []byte) error {
	if o.checker == nil {
		return nil
	}
	if err := o.checker.Check("sequence A", a); err != nil {
		return err
	}
	return o.checker.Check("sequence B", b)
}

// newProblem checks and classifies a and b. If compact is true, skipped
// bytes are removed.
func (o *options) newProblem(a, b []byte, compact bool) (problem, error) {
	if err := o.check(a, b); err != nil {
		return problem{}, err
	}
	x, y, swapped := relabel(a, b)
	p := problem{swapped: swapped}
	if compact {
		p.x, p.y = o.table.Compact(x), o.table.Compact(y)
	} else {
		p.x, p.y = o.table.Encode(x), o.table.Encode(y)
	}
	return p, nil
}

func (p problem) dims() (m, n int) {
	return len(p.x), len(p.y)
}
