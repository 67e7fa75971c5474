// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"cloudeng.io/bio/editdist"
	"cloudeng.io/bio/nucleotide"
	"cloudeng.io/bio/sequence"
	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
)

type application struct {
	out, errOut io.Writer
}

// session holds the state shared by a single invocation of a command.
type session struct {
	cfg     Config
	logger  *slog.Logger
	checker *nucleotide.Checker
	closers []func() error
}

func (a *application) newSession(ctx context.Context, fv *CommonFlags) (*session, error) {
	cfg, err := loadConfig(ctx, fv)
	if err != nil {
		return nil, err
	}
	policy, _ := nucleotide.ParsePolicy(cfg.InvalidBytes)
	lc := fv.LoggingConfig()
	if policy == nucleotide.Warn {
		lc.Level = max(lc.Level, 1)
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger.Logger, closers: []func() error{logger.Close}}
	for _, p := range fv.Profile.Profiles {
		save, err := profiling.Start(p.Name, p.Filename)
		if err != nil {
			return nil, errors.NewM(err, s.close())
		}
		s.logger.Info("profiling", "profile", p.Name, "file", p.Filename)
		s.closers = append(s.closers, save)
	}
	if policy != nucleotide.Ignore {
		s.checker = &nucleotide.Checker{
			Table:  nucleotide.Standard,
			Policy: policy,
			Logger: s.logger,
		}
	}
	s.logger.Debug("configuration", "engine", cfg.Engine, "cache_size", cfg.CacheSize, "threshold", cfg.Threshold, "concurrency", cfg.Concurrency, "invalid_bytes", cfg.InvalidBytes)
	return s, nil
}

// close releases resources in the reverse order to that in which they
// were acquired.
func (s *session) close() error {
	var errs errors.M
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs.Append(s.closers[i]())
	}
	s.closers = nil
	return errs.Err()
}

// check applies the checker, if any, to both sequences.
func (s *session) check(seqs [2][]byte) error {
	if err := s.checker.Check("sequence A", seqs[0]); err != nil {
		return err
	}
	return s.checker.Check("sequence B", seqs[1])
}

func (s *session) engine(name string) (editdist.Engine, error) {
	opts := append(s.cfg.options(), editdist.WithLogger(s.logger))
	if s.checker != nil {
		opts = append(opts, editdist.WithChecker(s.checker))
	}
	return editdist.New(name, opts...)
}

// extract reads the two sequences specified by args, each as a
// <file> <begin> <length> triple.
func (a *application) extract(files *sequence.Files, s *session, args []string) ([2][]byte, error) {
	var seqs [2][]byte
	for i := range seqs {
		name, begin, length := args[i*3], args[i*3+1], args[i*3+2]
		b, err := strconv.ParseInt(begin, 10, 64)
		if err != nil {
			return seqs, fmt.Errorf("invalid beginning for %v: %v: %w", name, begin, err)
		}
		l, err := strconv.ParseInt(length, 10, 64)
		if err != nil {
			return seqs, fmt.Errorf("invalid length for %v: %v: %w", name, length, err)
		}
		m, err := files.Open(name)
		if err != nil {
			return seqs, err
		}
		ex, err := m.Range(b, l)
		if err != nil {
			return seqs, err
		}
		if len(ex.Comment) > 0 {
			fmt.Fprintf(a.errOut, "sequence comment in preamble: %s\n", ex.Comment)
		}
		if ex.Truncated {
			fmt.Fprintf(a.errOut, "warning: length %v for %v exceeds the end of the file, truncated to %v\n", ex.Requested, name, len(ex.Data))
		}
		fmt.Fprintln(a.errOut, sequence.Preview(ex.Data, s.cfg.Preview))
		s.logger.Info("sequence", "file", name, "offset", ex.Offset, "length", len(ex.Data), "bases", nucleotide.Standard.CountBases(ex.Data))
		seqs[i] = ex.Data
	}
	return seqs, nil
}

func (a *application) distance(ctx context.Context, values interface{}, args []string) error {
	s, err := a.newSession(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer s.close()
	var files sequence.Files
	defer files.Close()
	seqs, err := a.extract(&files, s, args)
	if err != nil {
		return err
	}
	e, err := s.engine(s.cfg.Engine)
	if err != nil {
		return err
	}
	d, err := e.Distance(seqs[0], seqs[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, d)
	return nil
}

func (a *application) literal(ctx context.Context, values interface{}, args []string) error {
	s, err := a.newSession(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer s.close()
	e, err := s.engine(s.cfg.Engine)
	if err != nil {
		return err
	}
	d, err := e.Distance([]byte(args[0]), []byte(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, d)
	return nil
}

type result struct {
	engine   string
	distance int64
	took     time.Duration
}

func (a *application) compare(ctx context.Context, values interface{}, args []string) error {
	s, err := a.newSession(ctx, values.(*CommonFlags))
	if err != nil {
		return err
	}
	defer s.close()
	var files sequence.Files
	defer files.Close()
	seqs, err := a.extract(&files, s, args)
	if err != nil {
		return err
	}
	// Check once rather than once per engine.
	if err := s.check(seqs); err != nil {
		return err
	}
	s.checker = nil
	var names []string
	for _, name := range editdist.Engines() {
		if name == editdist.RecursiveEngine && len(seqs[0])+len(seqs[1]) > editdist.MaxRecursionDepth {
			fmt.Fprintf(a.errOut, "skipping %v: combined length %v exceeds %v\n", name, len(seqs[0])+len(seqs[1]), editdist.MaxRecursionDepth)
			s.logger.Warn("engine skipped", "engine", name, "length", len(seqs[0])+len(seqs[1]), "limit", editdist.MaxRecursionDepth)
			continue
		}
		names = append(names, name)
	}
	results := make([]result, len(names))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		e, err := s.engine(name)
		if err != nil {
			return err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			d, err := e.Distance(seqs[0], seqs[1])
			if err != nil {
				return errors.Annotate(name, err)
			}
			mu.Lock()
			defer mu.Unlock()
			results[i] = result{engine: name, distance: d, took: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var errs errors.M
	for _, r := range results {
		fmt.Fprintf(a.out, "%-16v %v %v\n", r.engine, r.distance, r.took)
		if r.distance != results[0].distance {
			errs.Append(fmt.Errorf("%v and %v disagree: %v != %v", r.engine, results[0].engine, r.distance, results[0].distance))
		}
	}
	return errs.Err()
}

func (a *application) config(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*configFlags)
	desc, err := describeConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, desc)
	if len(fv.Config) == 0 {
		return nil
	}
	cfg, err := loadConfig(ctx, &CommonFlags{Config: fv.Config})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%v:\n%v", fv.Config, cfg)
	return nil
}
