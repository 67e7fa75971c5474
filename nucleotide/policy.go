// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucleotide

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cloudeng.io/errors"
)

// Policy determines how bytes that are neither bases nor whitespace
// are treated.
type Policy int

// Values for Policy.
const (
	// Ignore silently skips malformed bytes.
	Ignore Policy = iota
	// Warn logs a warning for each of the first few malformed bytes, skips
	// all of them and then logs the total number skipped.
	Warn
	// Abort returns an error for the first malformed byte.
	Abort
)

var policyNames = map[Policy]string{
	Ignore: "ignore",
	Warn:   "warn",
	Abort:  "abort",
}

// PolicyNames returns the names accepted by ParsePolicy.
func PolicyNames() []string {
	return []string{"ignore", "warn", "abort"}
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if n, ok := policyNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses a policy name. The empty string is treated
// as Ignore.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "ignore":
		return Ignore, nil
	case "warn", "warning":
		return Warn, nil
	case "abort", "error":
		return Abort, nil
	}
	return Ignore, fmt.Errorf("unrecognised policy %q, not one of: %v", name, strings.Join(PolicyNames(), ", "))
}

// InvalidByteError is returned by Checker.Check for the Abort policy.
type InvalidByteError struct {
	Offset int
	Byte   byte
}

// Error implements error.
func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("byte %q (0x%02x) at offset %d is not a base (expected one of AaCcGgTtUuNn)", e.Byte, e.Byte, e.Offset)
}

// ErrInvalidByte can be used with errors.Is to test for an InvalidByteError.
var ErrInvalidByte = errors.New("invalid byte")

// Is implements errors.Is.
func (e *InvalidByteError) Is(target error) bool {
	return target == ErrInvalidByte
}

// Checker applies a Policy to the bytes of a sequence.
type Checker struct {
	Table  *Table
	Policy Policy
	// Logger is used for the Warn policy, if nil, warnings are discarded.
	Logger *slog.Logger
	// MaxWarnings is the number of malformed bytes that are logged
	// individually for each sequence, DefaultMaxWarnings is used if
	// it is zero or negative.
	MaxWarnings int
}

// DefaultMaxWarnings is the default value for Checker.MaxWarnings.
const DefaultMaxWarnings = 10

// isSpace matches the C locale definition of whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Malformed returns true if b is neither a base nor whitespace.
func (c *Checker) Malformed(b byte) bool {
	tbl := c.Table
	if tbl == nil {
		tbl = Standard
	}
	return !tbl.IsBase(b) && !isSpace(b)
}

// Check applies the checker's policy to seq. Name is used to identify
// the sequence in warnings and errors. A nil Checker ignores everything.
func (c *Checker) Check(name string, seq []byte) error {
	if c == nil || c.Policy == Ignore {
		return nil
	}
	logger := c.Logger
	if logger == nil {
		logger = discardLogger
	}
	limit := c.MaxWarnings
	if limit <= 0 {
		limit = DefaultMaxWarnings
	}
	warned := 0
	for i, b := range seq {
		if !c.Malformed(b) {
			continue
		}
		if c.Policy == Abort {
			return errors.Annotate(name, &InvalidByteError{Offset: i, Byte: b})
		}
		warned++
		if warned > limit {
			continue
		}
		logger.LogAttrs(context.Background(), slog.LevelWarn, "skipping byte that is not a base",
			slog.String("sequence", name),
			slog.Int("offset", i),
			slog.String("byte", fmt.Sprintf("%q", b)))
	}
	if warned > 0 {
		logger.Warn("malformed bytes skipped", "sequence", name, "count", warned, "logged", min(warned, limit))
	}
	return nil
}
