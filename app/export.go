// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// exportCSV handles /export.csv. It writes the named view's first
// chart table (or the one selected with the chart parameter) as CSV.
func (a *App) exportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	v := findView(r.FormValue("name"))
	if v == nil {
		http.Error(w, "unknown view", http.StatusNotFound)
		return
	}
	idx := 0
	if s := r.FormValue("chart"); s != "" {
		var err error
		if idx, err = strconv.Atoi(s); err != nil || idx < 0 || idx >= len(v.Charts) {
			http.Error(w, "unknown chart", http.StatusNotFound)
			return
		}
	}
	t := v.Charts[idx].Table(a.Data())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+v.Tag+`.csv"`)
	cw := csv.NewWriter(w)
	if err := writeTableCSV(cw, t); err != nil {
		errorf(ctx, "exporting view %q: %v", v.Tag, err)
	}
}

// writeTableCSV writes t's columns, header row first, to cw.
func writeTableCSV(cw *csv.Writer, t *table.Table) error {
	cols := t.Columns()
	if err := cw.Write(cols); err != nil {
		return err
	}
	slices := make([]table.Slice, len(cols))
	for i, name := range cols {
		slices[i] = t.Column(name)
	}
	row := make([]string, len(cols))
	for i := 0; i < t.Len(); i++ {
		for j := range slices {
			switch col := slices[j].(type) {
			case []string:
				row[j] = col[i]
			case []int:
				row[j] = strconv.Itoa(col[i])
			case []float64:
				row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
