// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
)

// intFlag is an int that can be used as a flag.Value and that records
// whether it was set on the command line.
type intFlag struct {
	value int
	set   bool
}

// Set implements flag.Value.
func (f *intFlag) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid integer: %q", v)
	}
	f.value, f.set = n, true
	return nil
}

// String implements flag.Value.
func (f *intFlag) String() string {
	if !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

// Get implements flag.Getter.
func (f *intFlag) Get() interface{} {
	return f.value
}

// IsDefault returns true if the flag was not set.
func (f *intFlag) IsDefault() bool {
	return !f.set
}

// stringFlag is the string equivalent of intFlag.
type stringFlag struct {
	value string
	set   bool
}

// Set implements flag.Value.
func (f *stringFlag) Set(v string) error {
	f.value, f.set = v, true
	return nil
}

// String implements flag.Value.
func (f *stringFlag) String() string {
	return f.value
}

// Get implements flag.Getter.
func (f *stringFlag) Get() interface{} {
	return f.value
}

// IsDefault returns true if the flag was not set.
func (f *stringFlag) IsDefault() bool {
	return !f.set
}
