// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build unix

package sequence

import (
	"fmt"
	"math"

	"golang.org/x/sys/unix"
)

func (m *Mapping) mmap(size int64) error {
	if size > math.MaxInt {
		return fmt.Errorf("file too large to map: %v bytes", size)
	}
	data, err := unix.Mmap(int(m.file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	m.data, m.mapped = data, true
	return nil
}

func (m *Mapping) munmap() error {
	if err := unix.Munmap(m.data); err != nil {
		return fmt.Errorf("%v: munmap: %w", m.name, err)
	}
	return nil
}
