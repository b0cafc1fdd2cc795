// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "testing"

func TestScale(t *testing.T) {
	test := func(val float64, cls Class, want string) {
		t.Helper()
		got := Scale(val, cls)
		if got != want {
			t.Errorf("Scale(%v, %v) = %q, want %q", val, cls, got, want)
		}
	}

	test(0, Decimal, "0.000")
	test(1, Decimal, "1.000")
	test(12.5, Decimal, "12.50")
	test(123456789, Decimal, "123.5M")
	test(1234000, Decimal, "1.234M")

	test(2048, Binary, "2.000Ki")
	test(1048576, Binary, "1.000Mi")
	test(512, Binary, "512.0")
}

func TestFormatDuration(t *testing.T) {
	test := func(us float64, want string) {
		t.Helper()
		if got := FormatDuration(us); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", us, got, want)
		}
	}

	test(0, "0.000 µs")
	test(150, "150.0 µs")
	test(1500, "1.500 ms")
	test(25000, "25.00 ms")
	// The unit changes; the canonical unit never gets a prefix
	// glued onto it.
	test(1234000, "1.234 s")
}

func TestFormatMemory(t *testing.T) {
	test := func(kb float64, want string) {
		t.Helper()
		if got := FormatMemory(kb); got != want {
			t.Errorf("FormatMemory(%v) = %q, want %q", kb, got, want)
		}
	}

	test(0, "0.000 KB")
	test(512, "512.0 KB")
	test(2048, "2.000 MB")
	test(3<<20, "3.000 GB")
}

func TestCommonScale(t *testing.T) {
	s := CommonScale([]float64{1500, 1234000}, Decimal)
	if got := s.Format(1234000); got != "1234.000k" {
		t.Errorf("Format(1234000) = %q, want %q", got, "1234.000k")
	}
	if got := s.Format(1500); got != "1.500k" {
		t.Errorf("Format(1500) = %q, want %q", got, "1.500k")
	}
}
