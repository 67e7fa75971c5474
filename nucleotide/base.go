// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nucleotide provides the classification of bytes, as found in
// FASTA and similar files, into canonical DNA/RNA bases. Classification
// is table driven: a 256 entry Table maps every possible byte to a Base.
// Bytes that do not correspond to a base (newlines, comment characters etc)
// are classified as Skip and are expected to be ignored by callers.
//
//	tbl := nucleotide.NewTable()
//	tbl.Classify('a') == nucleotide.Adenine
//	tbl.Classify('\n') == nucleotide.Skip
//
// Standard is a ready built, immutable, Table that may be shared by any
// number of goroutines.
package nucleotide

import "fmt"

// Base represents a canonical base, an unknown base or a byte that is to be
// skipped.
type Base uint8

// Values for Base. Skip is the zero value so that a zeroed Table skips
// everything.
const (
	Skip Base = iota
	Adenine
	Cytosine
	Guanine
	Thymine
	Uracil
	Unknown
)

var baseNames = [...]string{
	Skip:     "skip",
	Adenine:  "adenine",
	Cytosine: "cytosine",
	Guanine:  "guanine",
	Thymine:  "thymine",
	Uracil:   "uracil",
	Unknown:  "unknown",
}

// String implements fmt.Stringer.
func (b Base) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

// IsBase returns true for all values other than Skip.
func (b Base) IsBase() bool {
	return b != Skip
}

// Table maps bytes to Bases.
type Table [256]Base

// Standard is the Table returned by NewTable. It is built once during
// package initialization and must not be modified.
var Standard = NewTable()

// NewTable returns a fully initialized Table: a/A, c/C, g/G, t/T, u/U map
// to the corresponding canonical bases, n/N to Unknown and all other
// bytes to Skip.
func NewTable() *Table {
	t := &Table{}
	for i := range t {
		t[i] = Skip
	}
	for _, m := range []struct {
		lower byte
		base  Base
	}{
		{'a', Adenine},
		{'c', Cytosine},
		{'g', Guanine},
		{'t', Thymine},
		{'u', Uracil},
		{'n', Unknown},
	} {
		t[m.lower] = m.base
		t[m.lower-'a'+'A'] = m.base
	}
	return t
}

// Classify returns the Base for c.
func (t *Table) Classify(c byte) Base {
	return t[c]
}

// IsBase returns true if c is a known or unknown base.
func (t *Table) IsBase(c byte) bool {
	return t[c] != Skip
}

// IsUnknown returns true if c is an unknown base, ie. 'n' or 'N'.
func (t *Table) IsUnknown(c byte) bool {
	return t[c] == Unknown
}

// Same returns true if a and b classify to the same Base. Note that
// two unknown bases are considered to be the same and that two skipped
// bytes are also the same.
func (t *Table) Same(a, b byte) bool {
	return t[a] == t[b]
}

// Encode returns the classification of every byte in seq.
func (t *Table) Encode(seq []byte) []Base {
	r := make([]Base, len(seq))
	for i, c := range seq {
		r[i] = t[c]
	}
	return r
}

// Compact returns the classification of seq with all skipped bytes
// removed.
func (t *Table) Compact(seq []byte) []Base {
	r := make([]Base, 0, len(seq))
	for _, c := range seq {
		if b := t[c]; b != Skip {
			r = append(r, b)
		}
	}
	return r
}

// CountBases returns the number of bytes in seq that are bases.
func (t *Table) CountBases(seq []byte) int {
	n := 0
	for _, c := range seq {
		if t[c] != Skip {
			n++
		}
	}
	return n
}
