// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"cloudeng.io/bio/editdist"
	"cloudeng.io/bio/nucleotide"
	"cloudeng.io/errors"
	"cloudeng.io/sync/synctestutil"
)

func newTestApp() (*application, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &application{out: out, errOut: errOut}, out, errOut
}

// newFlags returns CommonFlags as if the supplied name, value pairs had
// been given on the command line.
func newFlags(t *testing.T, nameValues ...string) *CommonFlags {
	t.Helper()
	fv := &CommonFlags{}
	values := map[string]flag.Value{
		"engine":        &fv.Engine,
		"cache-size":    &fv.CacheSize,
		"threshold":     &fv.Threshold,
		"concurrency":   &fv.Concurrency,
		"invalid-bytes": &fv.InvalidBytes,
		"preview":       &fv.Preview,
	}
	for i := 0; i < len(nameValues); i += 2 {
		name, value := nameValues[i], nameValues[i+1]
		if name == "config" {
			fv.Config = value
			continue
		}
		if err := values[name].Set(value); err != nil {
			t.Fatalf("%v: %v", name, err)
		}
	}
	return fv
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLiteral(t *testing.T) {
	ctx := context.Background()
	for _, engine := range editdist.Engines() {
		app, out, _ := newTestApp()
		fv := newFlags(t, "engine", engine)
		if err := app.literal(ctx, fv, []string{"GATTACA", "GCATGCU"}); err != nil {
			t.Fatalf("%v: %v", engine, err)
		}
		if got, want := out.String(), "4\n"; got != want {
			t.Errorf("%v: got %q, want %q", engine, got, want)
		}
	}
	app, _, _ := newTestApp()
	err := app.literal(ctx, newFlags(t, "engine", "quadratic"), []string{"A", "C"})
	if err == nil || !strings.Contains(err.Error(), "quadratic") {
		t.Errorf("missing or unexpected error: %v", err)
	}
}

func TestInvalidBytes(t *testing.T) {
	ctx := context.Background()
	app, out, _ := newTestApp()
	if err := app.literal(ctx, newFlags(t, "invalid-bytes", "ignore"), []string{"AC-GT", "ACGT"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	err := app.literal(ctx, newFlags(t, "invalid-bytes", "abort"), []string{"AC-GT", "ACGT"})
	if !errors.Is(err, nucleotide.ErrInvalidByte) {
		t.Errorf("missing or unexpected error: %v", err)
	}
	err = app.literal(ctx, newFlags(t, "invalid-bytes", "sometimes"), []string{"A", "A"})
	if err == nil || !strings.Contains(err.Error(), "sometimes") {
		t.Errorf("missing or unexpected error: %v", err)
	}
}

func TestDistance(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f1 := writeFile(t, dir, "f1", "CAcgT")
	f2 := writeFile(t, dir, "f2", "acaCGTACNNNAT")
	f3 := writeFile(t, dir, "f3", ">chrUn test sequence\nCAcgT\n")

	for i, tc := range []struct {
		args     []string
		distance string
		stderr   []string
	}{
		{[]string{f1, "0", "5", f2, "0", "7"}, "4\n", []string{"CAcgT\n", "acaCGTA\n"}},
		{[]string{f1, "0", "5", f2, "0", "13"}, "16\n", nil},
		{[]string{f1, "0", "5", f2, "0", "100"}, "16\n", []string{"truncated to 13"}},
		{[]string{f3, "0", "5", f2, "0", "7"}, "4\n", []string{"preamble: >chrUn test sequence\n"}},
		{[]string{f1, "0", "5", f1, "0", "5"}, "0\n", nil},
	} {
		app, out, errOut := newTestApp()
		if err := app.distance(ctx, &CommonFlags{}, tc.args); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := out.String(), tc.distance; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
		for _, want := range tc.stderr {
			if got := errOut.String(); !strings.Contains(got, want) {
				t.Errorf("%v: %q does not contain %q", i, got, want)
			}
		}
	}

	app, _, _ := newTestApp()
	for i, args := range [][]string{
		{f1, "x", "5", f2, "0", "7"},
		{f1, "0", "y", f2, "0", "7"},
		{f1, "0", "5", f2, "14", "7"},
		{f1, "0", "5", filepath.Join(dir, "missing"), "0", "7"},
	} {
		if err := app.distance(ctx, &CommonFlags{}, args); err == nil {
			t.Errorf("%v: expected an error", i)
		}
	}
}

func TestCompare(t *testing.T) {
	defer synctestutil.AssertNoGoroutines(t)()
	ctx := context.Background()
	dir := t.TempDir()
	f1 := writeFile(t, dir, "f1", strings.Repeat("ACGTTGCAN\n", 20))
	f2 := writeFile(t, dir, "f2", strings.Repeat("TTGACA\nCG", 25))
	app, out, _ := newTestApp()
	fv := newFlags(t, "threshold", "3", "concurrency", "4", "cache-size", "16")
	if err := app.compare(ctx, fv, []string{f1, "0", "1000", f2, "0", "1000"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), len(editdist.Engines()); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	distance := strings.Fields(lines[0])[1]
	for i, line := range lines {
		fields := strings.Fields(line)
		if got, want := fields[0], editdist.Engines()[i]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := fields[1], distance; got != want {
			t.Errorf("%v: got %v, want %v", fields[0], got, want)
		}
	}
}

func TestCompareSkipsRecursive(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f1 := writeFile(t, dir, "f1", strings.Repeat("A", editdist.MaxRecursionDepth))
	f2 := writeFile(t, dir, "f2", "C")
	app, out, errOut := newTestApp()
	length := strconv.Itoa(editdist.MaxRecursionDepth)
	if err := app.compare(ctx, &CommonFlags{}, []string{f1, "0", length, f2, "0", "1"}); err != nil {
		t.Fatal(err)
	}
	if got, want := errOut.String(), "skipping recursive"; !strings.Contains(got, want) {
		t.Errorf("%q does not contain %q", got, want)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), len(editdist.Engines())-1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	distance := strconv.Itoa(2*editdist.MaxRecursionDepth - 1)
	for _, line := range lines {
		fields := strings.Fields(line)
		if fields[0] == editdist.RecursiveEngine {
			t.Errorf("recursive engine should have been skipped")
		}
		if got, want := fields[1], distance; got != want {
			t.Errorf("%v: got %v, want %v", fields[0], got, want)
		}
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yaml", `preview: 7
invalid_bytes: abort
`)
	cfg, err := loadConfig(ctx, newFlags(t, "config", cfgFile))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Preview, 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.InvalidBytes, "abort"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Flags set to zero values still override the configuration file.
	cfg, err = loadConfig(ctx, newFlags(t, "config", cfgFile, "preview", "0", "invalid-bytes", ""))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Preview, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.InvalidBytes, ""; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	f1 := writeFile(t, dir, "f1", "CAcgT")
	app, out, errOut := newTestApp()
	fv := newFlags(t, "config", cfgFile, "preview", "0", "invalid-bytes", "ignore")
	if err := app.distance(ctx, fv, []string{f1, "0", "5", f1, "0", "5"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "0\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := errOut.String(), "...\n...\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var n intFlag
	if err := n.Set("seven"); err == nil {
		t.Errorf("expected an error")
	}
	if !n.IsDefault() || n.String() != "" {
		t.Errorf("unset flag: %v, %q", n.IsDefault(), n.String())
	}
	if err := n.Set("0"); err != nil || n.IsDefault() || n.String() != "0" {
		t.Errorf("set flag: %v, %v, %q", err, n.IsDefault(), n.String())
	}
}

func TestConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yaml", `engine: cache-oblivious
threshold: 4
invalid_bytes: warn
`)
	cfg, err := loadConfig(ctx, &CommonFlags{Config: cfgFile})
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Engine = editdist.CacheObliviousEngine
	want.Threshold = 4
	want.InvalidBytes = "warn"
	if got := cfg; got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	cfg, err = loadConfig(ctx, newFlags(t, "config", cfgFile, "engine", "naive", "threshold", "8", "cache-size", "128"))
	if err != nil {
		t.Fatal(err)
	}
	want.Engine = editdist.NaiveEngine
	want.Threshold = 8
	want.CacheSize = 128
	if got := cfg; got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	for i, contents := range []string{
		"engine: fast\n",
		"threshold: 1\n",
		"invalid_bytes: never\n",
		"concurrency: -2\n",
		"unknown_field: 3\n",
	} {
		bad := writeFile(t, dir, "bad.yaml", contents)
		if _, err := loadConfig(ctx, &CommonFlags{Config: bad}); err == nil {
			t.Errorf("%v: %q: expected an error", i, contents)
		}
	}
	if _, err := loadConfig(ctx, &CommonFlags{Config: filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Errorf("expected an error")
	}

	app, out, _ := newTestApp()
	if err := app.config(ctx, &configFlags{Config: cfgFile}, nil); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"engine:", "cache_size:", "threshold:", "concurrency:", "invalid_bytes:", "preview:", "engine: cache-oblivious"} {
		if !strings.Contains(out.String(), field) {
			t.Errorf("%q does not contain %q", out.String(), field)
		}
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	profile := filepath.Join(dir, "heap.out")
	fv := &CommonFlags{}
	if err := fv.Profile.Set("heap:" + profile); err != nil {
		t.Fatal(err)
	}
	app, out, _ := newTestApp()
	if err := app.literal(ctx, fv, []string{"ACGT", "ACGA"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if fi, err := os.Stat(profile); err != nil || fi.Size() == 0 {
		t.Errorf("profile not written: %v", err)
	}
}
