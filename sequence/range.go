// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sequence

import (
	"bytes"
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidRange is returned for a negative offset or length.
	ErrInvalidRange = errors.New("invalid range")

	// ErrBeyondEOF is returned when a range starts beyond the end of
	// a file.
	ErrBeyondEOF = errors.New("range begins beyond end of file")
)

// Extract represents a range of bytes taken from a Mapping.
type Extract struct {
	// Data is the extracted sequence, it refers to the underlying
	// mapping and must not be modified.
	Data []byte
	// Offset is the position of Data within the file, it differs from
	// the requested offset when a comment line is skipped.
	Offset int64
	// Comment is the FASTA comment line, including the leading '>' but
	// not the trailing newline, that preceded the sequence, if any.
	Comment []byte
	// Requested is the length that was asked for.
	Requested int64
	// Truncated is true when the requested length ran past the end of
	// the file and was shortened.
	Truncated bool
}

// Range returns length bytes starting at begin. If the byte at begin is
// '>' the line it starts is treated as a comment and skipped, and
// the length is counted from the start of the following line. A length
// that extends beyond the end of the file is truncated.
func (m *Mapping) Range(begin, length int64) (Extract, error) {
	if begin < 0 || length < 0 {
		return Extract{}, fmt.Errorf("%v: %w: begin %v, length %v", m.name, ErrInvalidRange, begin, length)
	}
	size := m.Len()
	if begin > size {
		return Extract{}, fmt.Errorf("%v: %w: begin %v exceeds file size of %v bytes", m.name, ErrBeyondEOF, begin, size)
	}
	ex := Extract{Requested: length}
	start := begin
	if start < size && m.data[start] == '>' {
		if nl := bytes.IndexByte(m.data[start:], '\n'); nl >= 0 {
			ex.Comment = m.data[start : start+int64(nl)]
			start += int64(nl) + 1
		} else {
			ex.Comment = m.data[start:]
			start = size
		}
	}
	end := start + length
	if end > size || end < start {
		end = size
		ex.Truncated = true
	}
	ex.Offset = start
	ex.Data = m.data[start:end]
	return ex, nil
}
