// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !unix

package sequence

import (
	"io"
)

func (m *Mapping) mmap(size int64) error {
	data := make([]byte, size)
	if _, err := io.ReadFull(m.file, data); err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *Mapping) munmap() error {
	return nil
}
