// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdist

import "cloudeng.io/bio/nucleotide"

// Costs of the edit operations.
const (
	// InsertionCost is the cost of inserting, or deleting, a base.
	InsertionCost int64 = 2
	// SubstitutionCost is the cost of substituting one known base
	// for a different known base.
	SubstitutionCost int64 = 1
	// SubstitutionUnknownCost is the cost of a substitution where
	// either base is unknown, including two unknown bases.
	SubstitutionUnknownCost int64 = 1
)

// Substitution returns the cost of aligning x with y. Both must be bases.
// Unknown bases are tested for before equality so that two unknown
// bases never match.
func Substitution(x, y nucleotide.Base) int64 {
	switch {
	case x == nucleotide.Unknown || y == nucleotide.Unknown:
		return SubstitutionUnknownCost
	case x == y:
		return 0
	}
	return SubstitutionCost
}

func gap(b nucleotide.Base) int64 {
	if b == nucleotide.Skip {
		return 0
	}
	return InsertionCost
}

// step evaluates phi(i, j) from its three successors for the suffix
// formulation: diag is phi(i+1, j+1), down phi(i+1, j) and right
// phi(i, j+1).
func step(x, y nucleotide.Base, diag, down, right int64) int64 {
	if x == nucleotide.Skip {
		return down
	}
	if y == nucleotide.Skip {
		return right
	}
	return min(Substitution(x, y)+diag, InsertionCost+down, InsertionCost+right)
}
