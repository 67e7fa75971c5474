// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sequence provides read-only access to sequence files: files
// are mapped into memory and byte ranges extracted from them without
// copying. A range that starts with a FASTA style '>' comment line has
// that line removed.
package sequence

import (
	"fmt"
	"os"
	"sync"

	"cloudeng.io/errors"
)

// Mapping represents a read-only, in-memory, view of a file.
type Mapping struct {
	name   string
	file   *os.File
	data   []byte
	mapped bool
}

// Open maps the named file into memory. An empty file results in an
// empty mapping.
func Open(filename string) (*Mapping, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%v: not a regular file", filename)
	}
	m := &Mapping{name: filename, file: f}
	if info.Size() == 0 {
		m.data = []byte{}
		return m, nil
	}
	if err := m.mmap(info.Size()); err != nil {
		f.Close()
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return m, nil
}

// Name returns the name of the mapped file.
func (m *Mapping) Name() string {
	return m.name
}

// Bytes returns the contents of the file. The returned slice must not
// be modified and is invalid once Close is called.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Len returns the size of the file.
func (m *Mapping) Len() int64 {
	return int64(len(m.data))
}

// Close releases the mapping and closes the file.
func (m *Mapping) Close() error {
	var errs errors.M
	if m.mapped {
		errs.Append(m.munmap())
		m.mapped = false
	}
	m.data = nil
	if m.file != nil {
		errs.Append(m.file.Close())
		m.file = nil
	}
	return errs.Err()
}

// Files maps each distinct file at most once so that multiple ranges
// taken from the same file share a single mapping. It is safe for
// concurrent use.
type Files struct {
	mu       sync.Mutex
	mappings map[string]*Mapping
}

// Open returns the mapping for filename, creating it if necessary.
func (fs *Files) Open(filename string) (*Mapping, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if m, ok := fs.mappings[filename]; ok {
		return m, nil
	}
	m, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if fs.mappings == nil {
		fs.mappings = map[string]*Mapping{}
	}
	fs.mappings[filename] = m
	return m, nil
}

// Len returns the number of files currently mapped.
func (fs *Files) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.mappings)
}

// Close closes all of the mappings created by Open.
func (fs *Files) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var errs errors.M
	for name, m := range fs.mappings {
		if err := m.Close(); err != nil {
			errs.Append(errors.Annotate(name, err))
		}
	}
	fs.mappings = nil
	return errs.Err()
}
