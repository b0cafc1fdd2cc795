// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// times returns the execution times of all records in period p.
func (c *Collection) times(p Period) []float64 {
	var xs []float64
	for _, r := range c.Records {
		if r.Period == string(p) {
			xs = append(xs, r.TimeMicros)
		}
	}
	return xs
}

// MeanTime returns the arithmetic mean execution time across all
// records in period p, or 0 if the period is empty.
func (c *Collection) MeanTime(p Period) float64 {
	return mean(c.times(p))
}

// GeoMeanTime returns the geometric mean execution time across all
// records in period p, or 0 if the period is empty.
func (c *Collection) GeoMeanTime(p Period) float64 {
	xs := c.times(p)
	if len(xs) == 0 {
		return 0
	}
	return stats.GeoMean(xs)
}

// ImprovementPercent returns how much the mean execution time
// improved from the before period to the after period, as a
// percentage of the before mean. Positive values are improvements.
// If either period is empty the improvement is 0.
func (c *Collection) ImprovementPercent() float64 {
	before := mean(c.times(Before))
	after := mean(c.times(After))
	if before == 0 {
		return 0
	}
	return (before - after) / before * 100
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	s := stats.Sample{Xs: sorted, Sorted: true}
	m, _, _ := s.MeanCI(0.95)
	return m
}
