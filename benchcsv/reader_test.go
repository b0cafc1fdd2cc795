// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"strings"
	"testing"
)

const sampleReport = `Method;Job;Mean;Error;StdDev;Allocated
CreateCustomer;DefaultJob;1.234 ms;0.01 ms;0.02 ms;24.5 KB
ReadCustomer;DefaultJob;"1,234.5 μs";10 μs;12 μs;2 MB
UpdateCustomer;DefaultJob;2 s;;;1 GB
`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(sampleReport), "sample.csv")

	want := []Result{
		{Method: "CreateCustomer", Mean: "1.234 ms", Allocated: "24.5 KB"},
		{Method: "ReadCustomer", Mean: "1,234.5 μs", Allocated: "2 MB"},
		{Method: "UpdateCustomer", Mean: "2 s", Allocated: "1 GB"},
	}
	var got []Result
	for r.Scan() {
		res := r.Result()
		got = append(got, Result{Method: res.Method, Mean: res.Mean, Allocated: res.Allocated})
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReaderPos(t *testing.T) {
	r := NewReader(strings.NewReader(sampleReport), "sample.csv")
	if !r.Scan() {
		t.Fatalf("Scan returned false, err %v", r.Err())
	}
	res := r.Result()
	file, line := res.Pos()
	if file != "sample.csv" || line != 2 {
		t.Errorf("Pos() = %s:%d, want sample.csv:2", file, line)
	}
}

func TestReaderMissingColumn(t *testing.T) {
	test := func(header string) {
		t.Helper()
		r := NewReader(strings.NewReader(header+"\n"), "bad.csv")
		if r.Scan() {
			t.Errorf("header %q: Scan returned true, want false", header)
		}
		if _, ok := r.Err().(*SyntaxError); !ok {
			t.Errorf("header %q: Err() = %v, want *SyntaxError", header, r.Err())
		}
	}
	test("Method;Mean")
	test("Method;Allocated")
	test("Mean;Allocated")
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""), "empty.csv")
	if r.Scan() {
		t.Error("Scan returned true on empty input")
	}
	if r.Err() == nil {
		t.Error("Err() = nil, want missing header error")
	}
}

func TestReaderSkipsShortRows(t *testing.T) {
	in := "Method;Mean;Allocated\nCreateOrder;1 ms;1 KB\nReadOrder\n;2 ms;2 KB\nDeleteOrder;3 ms;3 KB\n"
	r := NewReader(strings.NewReader(in), "holes.csv")
	var methods []string
	for r.Scan() {
		methods = append(methods, r.Result().Method)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "CreateOrder,DeleteOrder"
	if got := strings.Join(methods, ","); got != want {
		t.Errorf("methods = %q, want %q", got, want)
	}
}
