// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/bio/editdist"
	"cloudeng.io/bio/nucleotide"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/structdoc"
	"gopkg.in/yaml.v3"
)

// Config represents the YAML configuration file.
type Config struct {
	Engine       string `yaml:"engine" cmd:"edit distance engine: naive, cache-aware, cache-oblivious or recursive"`
	CacheSize    int    `yaml:"cache_size" cmd:"cache capacity, in table elements, used by the cache-aware engine"`
	Threshold    int    `yaml:"threshold" cmd:"size below which the cache-oblivious engine stops subdividing"`
	Concurrency  int    `yaml:"concurrency" cmd:"number of goroutines that the cache-oblivious engine may use"`
	InvalidBytes string `yaml:"invalid_bytes" cmd:"handling of bytes that are neither bases nor whitespace: ignore, warn or abort"`
	Preview      int    `yaml:"preview" cmd:"number of leading and trailing bytes of each sequence to display"`
}

const defaultPreview = 20

func defaultConfig() Config {
	return Config{
		Engine:       editdist.NaiveEngine,
		CacheSize:    editdist.DefaultCacheSize,
		Threshold:    editdist.DefaultThreshold,
		Concurrency:  1,
		InvalidBytes: nucleotide.Ignore.String(),
		Preview:      defaultPreview,
	}
}

// loadConfig returns the defaults, overridden by the contents of the
// configuration file, if any, and then by any flags that were set on
// the command line, including those set to zero or the empty string.
func loadConfig(ctx context.Context, fv *CommonFlags) (Config, error) {
	cfg := defaultConfig()
	if len(fv.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, fv.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if !fv.Engine.IsDefault() {
		cfg.Engine = fv.Engine.value
	}
	if !fv.CacheSize.IsDefault() {
		cfg.CacheSize = fv.CacheSize.value
	}
	if !fv.Threshold.IsDefault() {
		cfg.Threshold = fv.Threshold.value
	}
	if !fv.Concurrency.IsDefault() {
		cfg.Concurrency = fv.Concurrency.value
	}
	if !fv.InvalidBytes.IsDefault() {
		cfg.InvalidBytes = fv.InvalidBytes.value
	}
	if !fv.Preview.IsDefault() {
		cfg.Preview = fv.Preview.value
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	engines := editdist.Engines()
	if err := flags.OneOf(cfg.Engine).Validate(engines[0], engines[1:]...); err != nil {
		return err
	}
	if _, err := nucleotide.ParsePolicy(cfg.InvalidBytes); err != nil {
		return err
	}
	if cfg.Threshold < 2 {
		return fmt.Errorf("threshold must be at least 2: %v", cfg.Threshold)
	}
	if cfg.CacheSize < 1 || cfg.Concurrency < 1 || cfg.Preview < 0 {
		return fmt.Errorf("cache_size and concurrency must be positive and preview must not be negative")
	}
	return nil
}

// options returns the engine options represented by cfg.
func (cfg Config) options() []editdist.Option {
	return []editdist.Option{
		editdist.WithCacheSize(cfg.CacheSize),
		editdist.WithThreshold(cfg.Threshold),
		editdist.WithConcurrency(cfg.Concurrency),
	}
}

func describeConfigFile() (string, error) {
	out := &strings.Builder{}
	desc, err := structdoc.Describe(&Config{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		return "", err
	}
	out.WriteString(desc.Detail)
	out.WriteString(structdoc.FormatFields(0, 2, desc.Fields))
	return out.String(), nil
}

func (cfg Config) String() string {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err.Error()
	}
	return string(buf)
}
