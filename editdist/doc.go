// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package editdist computes the Needleman-Wunsch global alignment cost,
// or edit distance, between two nucleotide sequences. Sequences are
// plain byte slices, typically sub-slices of a FASTA file, and bytes that
// are not bases (newlines, comment characters etc) are skipped without
// cost. The cost model distinguishes insertions/deletions
// (InsertionCost), substitutions between known bases (SubstitutionCost)
// and substitutions involving an unknown base (SubstitutionUnknownCost).
//
// Several engines are provided, all of which evaluate the same recurrence
// and hence return identical results:
//
//	Naive           fills the complete (M+1)x(N+1) table row by row.
//	CacheAware      fills the table in KxK blocks, K = ceil(sqrt(Z/2)),
//	                where Z is the capacity of the targeted cache.
//	CacheOblivious  recursively halves the longer dimension until the
//	                sub-problem is below a fixed threshold, achieving the
//	                cache behaviour of CacheAware without knowing Z.
//	Recursive       top-down evaluation with memoization.
//
// In all cases the sequences are relabelled such that the longer one
// (X, of length M) indexes the rows and the shorter (Y, of length N)
// the columns of the table. For the suffix formulation used by Naive,
// CacheOblivious and Recursive, phi(i, j) is the distance between
// X[i:] and Y[j:]:
//
//	phi(M, N) = 0
//	phi(M, j) = gap(Y[j]) + phi(M, j+1)
//	phi(i, N) = gap(X[i]) + phi(i+1, N)
//	phi(i, j) = phi(i+1, j)     if X[i] is not a base
//	          = phi(i, j+1)     if Y[j] is not a base
//	          = min(sub(X[i], Y[j]) + phi(i+1, j+1),
//	                InsertionCost + phi(i+1, j),
//	                InsertionCost + phi(i, j+1))
//
// where gap(c) is InsertionCost for a base and 0 otherwise. The distance
// is phi(0, 0). CacheAware uses the equivalent prefix formulation over the
// sequences with all skipped bytes removed.
//
// Each call allocates its own table which is released when the call
// returns; engines may be used concurrently.
package editdist
