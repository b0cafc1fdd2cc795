// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads BenchmarkDotNet CSV report files.
//
// A report is a semicolon-separated table with one header row. The
// reader requires the Method, Mean, and Allocated columns and ignores
// any others. Measurement values are returned as raw strings; callers
// normalize them with the units package.
package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
)

// A Result is one row of a benchmark report.
//
// Mean and Allocated hold the raw measurement text exactly as printed
// by the benchmark tool (including unit markers, thousands separators,
// and quoting). They are not normalized here.
type Result struct {
	Method    string
	Mean      string
	Allocated string

	fileName string
	line     int
}

// Pos returns the file name and line of the report row this result
// was read from.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// A SyntaxError represents a malformed report file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads results from a single benchmark report.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err.
type Reader struct {
	cr       *csv.Reader
	fileName string
	line     int

	// Column positions discovered from the header row.
	methodCol, meanCol, allocCol int
	headerRead                   bool

	result Result
	err    error
}

// NewReader constructs a reader for one report read from r.
// fileName is used in error messages and Result positions.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading a new report from ior.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.cr = csv.NewReader(ior)
	r.cr.Comma = ';'
	// Reports quote fields that contain separators; the quoting is
	// not always strictly balanced, so take fields as they come.
	r.cr.LazyQuotes = true
	// Header and rows can disagree on trailing columns.
	r.cr.FieldsPerRecord = -1
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.headerRead = false
	r.err = nil
	r.result = Result{}
}

// required column names in a report header.
var requiredCols = []string{"Method", "Mean", "Allocated"}

func (r *Reader) readHeader() error {
	hdr, err := r.cr.Read()
	if err == io.EOF {
		return &SyntaxError{r.fileName, 1, "missing header row"}
	}
	if err != nil {
		return err
	}
	r.line++

	cols := map[string]int{}
	for i, name := range hdr {
		cols[name] = i
	}
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return &SyntaxError{r.fileName, 1, fmt.Sprintf("missing %q column", name)}
		}
	}
	r.methodCol = cols["Method"]
	r.meanCol = cols["Mean"]
	r.allocCol = cols["Allocated"]
	r.headerRead = true
	return nil
}

// Scan advances the reader to the next result and reports whether one
// was read. At EOF or on error it returns false; the caller should
// then use Err to distinguish the two.
//
// Rows too short to carry all required columns are skipped: a report
// row with holes is a missing measurement, not a failure.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.headerRead {
		if err := r.readHeader(); err != nil {
			r.err = err
			return false
		}
	}

	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			r.err = err
			return false
		}
		r.line++

		if len(rec) <= r.methodCol || len(rec) <= r.meanCol || len(rec) <= r.allocCol {
			continue
		}
		if rec[r.methodCol] == "" {
			continue
		}
		r.result = Result{
			Method:    rec[r.methodCol],
			Mean:      rec[r.meanCol],
			Allocated: rec[r.allocCol],
			fileName:  r.fileName,
			line:      r.line,
		}
		return true
	}
}

// Result returns the result that was just read by Scan. The returned
// value is only valid until the next call to Scan.
func (r *Reader) Result() Result {
	return r.result
}

// Err returns the error that stopped Scan, if any. A clean EOF is not
// an error.
func (r *Reader) Err() error {
	return r.err
}
