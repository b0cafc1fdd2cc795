// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the dashboard manifest: the listen address and
// the set of benchmark report files to serve.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/benchboard/benchboard/report"
)

// DefaultAddr is the listen address used when the manifest doesn't
// name one.
const DefaultAddr = "localhost:8050"

// DefaultReports is the report set assumed when the manifest names
// none: the conventional BenchmarkDotNet report filenames for the
// three technologies and both periods.
var DefaultReports = []Report{
	{Technology: "Entity Framework", Tag: "EF", Period: "before", Path: "CrudBenchmarks-report.csv"},
	{Technology: "ADO.NET", Tag: "ADO.NET", Period: "before", Path: "AdonetBenchmarks-report.csv"},
	{Technology: "Dapper", Tag: "Dapper", Period: "before", Path: "DapperBenchmarks-report.csv"},
	{Technology: "Entity Framework", Tag: "EF", Period: "after", Path: "EfBenchmarkTests-report.csv"},
	{Technology: "ADO.NET", Tag: "ADO.NET", Period: "after", Path: "AdoNetBenchmarkTests-report.csv"},
	{Technology: "Dapper", Tag: "Dapper", Period: "after", Path: "DapperBenchmarkTests-report.csv"},
}

// A Report names one benchmark report file in the manifest.
type Report struct {
	// Technology is the display name, e.g. "Entity Framework".
	Technology string `yaml:"technology"`
	// Tag is the short name benchmark tools prefix method names
	// with, e.g. "EF". Defaults to Technology.
	Tag string `yaml:"tag"`
	// Period is "before" or "after".
	Period string `yaml:"period"`
	// Path is the report file, relative to data_dir unless
	// absolute.
	Path string `yaml:"path"`
}

// A Config is the parsed manifest.
type Config struct {
	Addr    string   `yaml:"addr"`
	DataDir string   `yaml:"data_dir"`
	Reports []Report `yaml:"reports"`
}

// Load reads and validates the manifest at path. Relative data_dir
// values are resolved against the manifest's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, err)
	}
	cfg.applyDefaults(filepath.Dir(path))
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults(dir string) {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.DataDir == "" {
		c.DataDir = dir
	} else if !filepath.IsAbs(c.DataDir) {
		c.DataDir = filepath.Join(dir, c.DataDir)
	}
	if len(c.Reports) == 0 {
		c.Reports = append([]Report(nil), DefaultReports...)
	}
	for i := range c.Reports {
		if c.Reports[i].Tag == "" {
			c.Reports[i].Tag = c.Reports[i].Technology
		}
	}
}

func (c *Config) validate() error {
	for i, r := range c.Reports {
		if r.Technology == "" {
			return fmt.Errorf("report %d: missing technology", i)
		}
		if r.Path == "" {
			return fmt.Errorf("report %d: missing path", i)
		}
		if r.Period != "before" && r.Period != "after" {
			return fmt.Errorf("report %d: period is %q, want \"before\" or \"after\"", i, r.Period)
		}
	}
	return nil
}

// Sources converts the manifest's report list into loader sources,
// resolving relative paths against DataDir.
func (c *Config) Sources() []report.Source {
	srcs := make([]report.Source, len(c.Reports))
	for i, r := range c.Reports {
		path := r.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.DataDir, path)
		}
		period := report.Before
		if r.Period == "after" {
			period = report.After
		}
		srcs[i] = report.Source{
			Technology: report.Technology{Tag: r.Tag, Name: r.Technology},
			Period:     period,
			Path:       path,
		}
	}
	return srcs
}
