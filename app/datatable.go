// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/aclements/go-gg/table"
)

// column represents a column in a google.visualization.DataTable.
type column struct {
	Name string `json:"id"`
	Role string `json:"role,omitempty"`
	// These fields are filled in by toDataTable if unspecified.
	Type  string `json:"type"`
	Label string `json:"label"`
}

// dataTable is the JSON form accepted by
// "new google.visualization.DataTable".
type dataTable struct {
	Cols []column `json:"cols"`
	Rows []dtRow  `json:"rows"`
}

type dtRow struct {
	C []dtCell `json:"c"`
}

type dtCell struct {
	V interface{} `json:"v"`
}

// toDataTable converts every column of t, in order, into a DataTable
// that can be passed to the Google Charts API.
func toDataTable(t *table.Table) *dataTable {
	d := &dataTable{}
	var slices []table.Slice
	for _, name := range t.Columns() {
		col := t.Column(name)
		slices = append(slices, col)
		c := column{Name: name, Label: name}
		switch col.(type) {
		case []string:
			c.Type = "string"
		case []int, []float64:
			c.Type = "number"
		}
		d.Cols = append(d.Cols, c)
	}
	for i := 0; i < t.Len(); i++ {
		row := dtRow{C: make([]dtCell, len(slices))}
		for j := range slices {
			switch col := slices[j].(type) {
			case []string:
				row.C[j].V = col[i]
			case []int:
				row.C[j].V = col[i]
			case []float64:
				row.C[j].V = col[i]
			}
		}
		d.Rows = append(d.Rows, row)
	}
	return d
}

// pivot reshapes t, taking the value column and making a new column
// for each distinct value in the across column. pivot("Operation",
// "Technology", "TimeMicros") will reshape a table like
//
//	Operation	Technology	TimeMicros
//	Create		EF		1
//	Create		Dapper		2
//	Read		EF		3
//
// into a table like
//
//	Operation	EF	Dapper
//	Create		1	2
//	Read		3	0
//
// Rows and columns keep their first-appearance order. Combinations
// absent from t are filled with 0.
func pivot(t *table.Table, x, across, value string) *table.Table {
	xs := t.MustColumn(x).([]string)
	as := t.MustColumn(across).([]string)
	vs := t.MustColumn(value).([]float64)

	var xOrder, aOrder []string
	xIdx := map[string]int{}
	seen := map[string]bool{}
	for i := range xs {
		if _, ok := xIdx[xs[i]]; !ok {
			xIdx[xs[i]] = len(xOrder)
			xOrder = append(xOrder, xs[i])
		}
		if !seen[as[i]] {
			seen[as[i]] = true
			aOrder = append(aOrder, as[i])
		}
	}

	cols := make(map[string][]float64, len(aOrder))
	for _, a := range aOrder {
		cols[a] = make([]float64, len(xOrder))
	}
	for i := range xs {
		cols[as[i]][xIdx[xs[i]]] = vs[i]
	}

	b := new(table.Builder).Add(x, xOrder)
	for _, a := range aOrder {
		b.Add(a, cols[a])
	}
	return b.Done()
}

// withSeriesLabel adds a Series column combining each row's
// technology and period, e.g. "Dapper (Before)".
func withSeriesLabel(t *table.Table) *table.Table {
	techs := t.MustColumn("Technology").([]string)
	periods := t.MustColumn("Period").([]string)
	labels := make([]string, len(techs))
	for i := range techs {
		labels[i] = techs[i] + " (" + periods[i] + ")"
	}
	return table.NewBuilder(t).Add("Series", labels).Done()
}

// twoCol extracts a two-column table from t: the x column plus the
// value column relabeled to label. Int value columns are converted to
// float64.
func twoCol(t *table.Table, x, value, label string) *table.Table {
	var vs []float64
	switch col := t.MustColumn(value).(type) {
	case []float64:
		vs = col
	case []int:
		vs = make([]float64, len(col))
		for i, v := range col {
			vs[i] = float64(v)
		}
	}
	return new(table.Builder).
		Add(x, t.MustColumn(x).([]string)).
		Add(label, vs).
		Done()
}
