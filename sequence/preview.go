// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sequence

// Preview returns seq if it is no longer than 2n bytes, otherwise its
// first and last n bytes separated by "...".
func Preview(seq []byte, n int) string {
	n = max(n, 0)
	if len(seq) <= 2*n {
		return string(seq)
	}
	return string(seq[:n]) + "..." + string(seq[len(seq)-n:])
}
