// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"
	"strconv"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled by
	// powers of 1000, using SI prefixes.
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024, using IEC binary prefixes.
	Binary
)

// A Scaler represents a scaling factor for a number and its
// display representation.
type Scaler struct {
	Prec   int     // digits after the decimal point
	Factor float64 // unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // unit prefix ("k", "M", "Ki", ...)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, a Decimal scaler formats 123456789 as
// "123.5M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

type factor struct {
	factor float64
	prefix string
}

var siFactors = []factor{
	{1e12, "T"}, {1e9, "G"}, {1e6, "M"}, {1e3, "k"}, {1, ""},
}

var iecFactors = []factor{
	{1 << 40, "Ti"}, {1 << 30, "Gi"}, {1 << 20, "Mi"}, {1 << 10, "Ki"}, {1, ""},
}

// Scale formats val with roughly three significant digits, appending
// an SI or binary prefix.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

var durationUnits = []factor{
	{1e6, "s"}, {1e3, "ms"}, {1, "µs"},
}

var memoryUnits = []factor{
	{1 << 20, "GB"}, {1 << 10, "MB"}, {1, "KB"},
}

// FormatDuration formats a canonical microsecond value in the closest
// duration unit (µs, ms, or s), keeping roughly three significant
// digits. Unlike Scale, it changes the unit rather than prefixing it,
// so large values never print a compound like "1.50kµs".
func FormatDuration(us float64) string {
	return formatInUnit(us, durationUnits)
}

// FormatMemory formats a canonical kilobyte value in the closest
// memory unit (KB, MB, or GB), keeping roughly three significant
// digits.
func FormatMemory(kb float64) string {
	return formatInUnit(kb, memoryUnits)
}

func formatInUnit(v float64, units []factor) string {
	abs := math.Abs(v)
	u := units[len(units)-1]
	for _, f := range units {
		if abs >= f.factor {
			u = f
			break
		}
	}
	prec := 3
	switch scaled := abs / u.factor; {
	case scaled >= 100:
		prec = 1
	case scaled >= 10:
		prec = 2
	}
	return Scaler{prec, u.factor, " " + u.prefix}.Format(v)
}

// CommonScale returns a Scaler to apply to all values in vals. The
// scale is determined by the non-zero value closest to zero, so every
// value keeps roughly three significant digits.
func CommonScale(vals []float64, cls Class) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	factors := siFactors
	if cls == Binary {
		factors = iecFactors
	}
	for _, f := range factors {
		scaled := min / f.factor
		switch {
		case scaled >= 100:
			return Scaler{1, f.factor, f.prefix}
		case scaled >= 10:
			return Scaler{2, f.factor, f.prefix}
		case scaled >= 1:
			return Scaler{3, f.factor, f.prefix}
		}
	}

	// Below the smallest factor. Print with enough precision to
	// keep three significant digits.
	prec := 3
	for v := min; v < 0.9995 && prec < 10; v *= 10 {
		prec++
	}
	return Scaler{prec, 1, ""}
}
