// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"strconv"
	"strings"

	"github.com/benchboard/benchboard/benchcsv"
	"github.com/benchboard/benchboard/units"
)

// A Source names one report file: which technology produced it, which
// period it belongs to, and where it lives.
type Source struct {
	Technology Technology
	Period     Period
	Path       string
}

// A Collection holds every record loaded from the report files plus
// the technology display order. It is built once by Load, passed to
// consumers by pointer, and never mutated afterwards.
type Collection struct {
	Records []Record

	// Technologies is the display-name order for charts and
	// tables, following the order sources were given in.
	Technologies []string
}

// Load reads all sources and returns the normalized record
// collection. Measurement values are normalized to microseconds and
// kilobytes; after-period method names have their technology tag and
// quoting stripped. Unreadable files and malformed headers are
// errors; unparseable measurement values are not (they normalize
// to 0).
func Load(sources []Source) (*Collection, error) {
	paths := make([]string, len(sources))
	for i, src := range sources {
		// Label each file with its source index; technologies may
		// repeat across periods, so the index is the only safe key.
		paths[i] = strconv.Itoa(i) + "=" + src.Path
	}

	c := &Collection{}
	seen := map[string]bool{}
	for _, src := range sources {
		if !seen[src.Technology.Name] {
			seen[src.Technology.Name] = true
			c.Technologies = append(c.Technologies, src.Technology.Name)
		}
	}

	f := &benchcsv.Files{Paths: paths}
	for f.Scan() {
		i, _ := strconv.Atoi(f.Label())
		src := sources[i]
		res := f.Result()

		op := res.Method
		cat := CategoryCRUD
		if src.Period == After {
			op = cleanMethod(op, src.Technology.Tag)
			cat = CategoryQuery
		}
		c.Records = append(c.Records, Record{
			Operation:  op,
			Technology: src.Technology.Name,
			Period:     string(src.Period),
			Category:   cat,
			TimeMicros: units.DurationMicros(res.Mean),
			MemoryKB:   units.MemoryKB(res.Allocated),
		})
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// cleanMethod strips the technology tag and quoting the benchmark
// tool wraps around after-period method names: "EF: 'GetOrder'"
// becomes "GetOrder".
func cleanMethod(method, tag string) string {
	method = strings.TrimPrefix(method, tag+": ")
	return strings.ReplaceAll(method, "'", "")
}
