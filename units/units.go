// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units normalizes benchmark measurement strings into
// canonical units and formats numbers in those units.
//
// Benchmark report generators print measurements in whatever unit
// keeps the number readable ("1.23 ms", "2 MB"). Comparing across
// reports requires a single canonical unit per dimension: durations
// are normalized to microseconds and memory sizes to kilobytes.
//
// The normalizers are total functions and never produce a negative
// value. Absent, unparseable, or negative input yields 0 rather than
// an error; a report cell that cannot be read is treated as a missing
// measurement, not a failure.
package units

import (
	"strconv"
	"strings"
)

// A unitSuffix maps one recognized unit marker to the factor that
// converts a value in that unit to the canonical unit.
type unitSuffix struct {
	suffix string
	factor float64
}

// durationSuffixes is ordered most-specific first. "ms" and the
// microsecond spellings must be checked before the bare "s" suffix,
// since both end in 's'. Matching is anchored to the end of the
// token, so an unrecognized suffix such as "ns" never falls through
// to the seconds case.
var durationSuffixes = []unitSuffix{
	{"ms", 1e3},
	{"µs", 1}, // U+00B5 micro sign
	{"μs", 1}, // U+03BC Greek mu, as emitted by BenchmarkDotNet
	{"us", 1},
	{"s", 1e6},
}

var memorySuffixes = []unitSuffix{
	{"KB", 1},
	{"MB", 1 << 10},
	{"GB", 1 << 20},
}

var cleaner = strings.NewReplacer(",", "", "\"", "")

// DurationMicros normalizes a duration measurement string to
// microseconds. It accepts millisecond, microsecond, and second
// suffixes, and bare numbers, which are taken to be microseconds
// already. Thousands separators and quoting are stripped first.
// Absent or unparseable input yields 0.
func DurationMicros(s string) float64 {
	return normalize(s, durationSuffixes)
}

// MemoryKB normalizes a memory measurement string to kilobytes. It
// accepts KB, MB, and GB suffixes, and bare numbers, which are taken
// to be kilobytes already. Absent or unparseable input yields 0.
func MemoryKB(s string) float64 {
	return normalize(s, memorySuffixes)
}

func normalize(s string, suffixes []unitSuffix) float64 {
	s = strings.TrimSpace(cleaner.Replace(s))
	if s == "" {
		return 0
	}
	for _, u := range suffixes {
		rest, ok := strings.CutSuffix(s, u.suffix)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil || v < 0 {
			// Recognized marker with no number in front of it,
			// or a negative measurement. No benchmark takes
			// negative time or memory, so treat it like any
			// other malformed cell.
			return 0
		}
		return v * u.factor
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
