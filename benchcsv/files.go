// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"os"
	"strings"
)

// A Files reads results from a sequence of report files.
//
// Each entry in Paths must be of the form label=path. The label
// identifies the report a result came from (the loader uses it to
// carry the period and technology) and is returned by Label alongside
// each result.
type Files struct {
	// Paths is the list of label=path entries to read, in order.
	Paths []string

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []input

	reader Reader
	file   *os.File
	label  string
	err    error
}

type input struct {
	label, path string
}

func (f *Files) init() error {
	f.inputs = []input{}
	for _, p := range f.Paths {
		i := strings.Index(p, "=")
		if i < 0 {
			return fmt.Errorf("malformed input %q: want label=path", p)
		}
		f.inputs = append(f.inputs, input{p[:i], p[i+1:]})
	}
	return nil
}

// Scan advances to the next result across the file sequence and
// reports whether one was read. Files are opened lazily and closed
// when exhausted.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		if err := f.init(); err != nil {
			f.err = err
			return false
		}
	}

	for {
		if f.file == nil {
			if len(f.inputs) == 0 {
				return false
			}
			inp := f.inputs[0]
			f.inputs = f.inputs[1:]

			file, err := os.Open(inp.path)
			if err != nil {
				f.err = err
				return false
			}
			f.file = file
			f.label = inp.label
			f.reader.Reset(file, inp.path)
		}

		if f.reader.Scan() {
			return true
		}
		if err := f.reader.Err(); err != nil {
			f.err = err
			f.file.Close()
			f.file = nil
			return false
		}
		// Clean EOF. Move on to the next file.
		f.file.Close()
		f.file = nil
	}
}

// Result returns the result that was just read by Scan.
func (f *Files) Result() Result {
	return f.reader.Result()
}

// Label returns the label of the file the current result came from.
func (f *Files) Label() string {
	return f.label
}

// Err returns the error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}
