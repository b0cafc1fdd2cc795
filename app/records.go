// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"html/template"
	"net/http"

	"github.com/benchboard/benchboard/benchdb"
	"github.com/benchboard/benchboard/report"
	"github.com/benchboard/benchboard/units"
)

// recordsData is the struct passed to the records template.
type recordsData struct {
	Query        benchdb.Query
	Technologies []string
	Rows         []recordRow
	Error        string
}

type recordRow struct {
	Operation  string
	Technology string
	Period     string
	Category   string
	Time       string // e.g. "1.500 ms"
	Memory     string // e.g. "2.000 MB"
}

// records handles /records: a filterable listing of every stored
// measurement. With a database it reads from there; otherwise it
// falls back to the in-memory collection.
func (a *App) records(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	d := &recordsData{
		Query: benchdb.Query{
			Technology: r.FormValue("technology"),
			Period:     r.FormValue("period"),
			Category:   r.FormValue("category"),
		},
	}
	data := a.Data()
	d.Technologies = data.Technologies

	recs, err := a.queryRecords(r, d.Query, data)
	if err != nil {
		errorf(ctx, "querying records: %v", err)
		d.Error = err.Error()
	}

	for _, rec := range recs {
		d.Rows = append(d.Rows, recordRow{
			Operation:  rec.Operation,
			Technology: rec.Technology,
			Period:     rec.Period,
			Category:   rec.Category,
			Time:       units.FormatDuration(rec.TimeMicros),
			Memory:     units.FormatMemory(rec.MemoryKB),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := recordsTemplate.Execute(w, d); err != nil {
		errorf(ctx, "records template: %v", err)
	}
}

func (a *App) queryRecords(r *http.Request, q benchdb.Query, data *report.Collection) ([]report.Record, error) {
	if a.db != nil {
		return a.db.Records(requestContext(r), q)
	}
	var recs []report.Record
	for _, rec := range data.Records {
		if q.Technology != "" && rec.Technology != q.Technology {
			continue
		}
		if q.Period != "" && rec.Period != q.Period {
			continue
		}
		if q.Category != "" && rec.Category != q.Category {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

var recordsTemplate = template.Must(template.New("records").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benchboard: records</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
</style>
</head>
<body>
<h1>Records</h1>
<p><a href="/">Dashboard</a></p>
{{if .Error}}<p>{{.Error}}</p>{{end}}
<form method="GET">
<select name="technology">
<option value="">all technologies</option>
{{$q := .Query}}
{{range .Technologies}}<option{{if eq . $q.Technology}} selected{{end}}>{{.}}</option>
{{end}}</select>
<select name="period">
<option value="">both periods</option>
<option{{if eq "Before" $q.Period}} selected{{end}}>Before</option>
<option{{if eq "After" $q.Period}} selected{{end}}>After</option>
</select>
<select name="category">
<option value="">all categories</option>
<option{{if eq "CRUD" $q.Category}} selected{{end}}>CRUD</option>
<option{{if eq "Query" $q.Category}} selected{{end}}>Query</option>
</select>
<input type="submit" value="Filter">
</form>
<table>
<tr><th>Operation</th><th>Technology</th><th>Period</th><th>Category</th><th>Time</th><th>Memory</th></tr>
{{range .Rows}}<tr><td>{{.Operation}}</td><td>{{.Technology}}</td><td>{{.Period}}</td><td>{{.Category}}</td><td>{{.Time}}</td><td>{{.Memory}}</td></tr>
{{end}}</table>
</body>
</html>
`))
