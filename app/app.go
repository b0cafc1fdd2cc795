// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the benchmark dashboard server. Construct an
// App with New and call RegisterOnMux to connect it with an HTTP
// server.
package app

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/net/context"

	"github.com/benchboard/benchboard/benchdb"
	"github.com/benchboard/benchboard/report"
)

// App manages the dashboard server logic. It's safe for concurrent
// use by multiple goroutines, and its data can be swapped while
// serving.
type App struct {
	mu   sync.RWMutex
	data *report.Collection

	// DB, if non-nil, mirrors the current record set for the
	// /records page.
	db *benchdb.DB
}

// New returns an App serving data. If db is non-nil the records are
// also stored there.
func New(data *report.Collection, db *benchdb.DB) (*App, error) {
	a := &App{db: db}
	if err := a.SetData(context.Background(), data); err != nil {
		return nil, err
	}
	return a, nil
}

// SetData atomically replaces the collection the app serves.
// In-flight requests keep the collection they started with.
func (a *App) SetData(ctx context.Context, data *report.Collection) error {
	if a.db != nil {
		if err := a.db.ReplaceRecords(ctx, data.Records); err != nil {
			return err
		}
	}
	a.mu.Lock()
	a.data = data
	a.mu.Unlock()
	return nil
}

// Data returns the current collection.
func (a *App) Data() *report.Collection {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.data
}

// RegisterOnMux registers the app's URLs on mux.
func (a *App) RegisterOnMux(mux *http.ServeMux) {
	mux.HandleFunc("/", a.index)
	mux.HandleFunc("/view", a.view)
	mux.HandleFunc("/chart.png", a.chartPNG)
	mux.HandleFunc("/export.csv", a.exportCSV)
	mux.HandleFunc("/records", a.records)
}

// indexData is the struct passed to the index template.
type indexData struct {
	Views []view
}

// index handles the root page: the view dropdown plus the Google
// Charts client that fetches /view and draws it.
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, &indexData{Views: views}); err != nil {
		errorf(requestContext(r), "index template: %v", err)
	}
}

// viewData is the JSON served by /view.
type viewData struct {
	Tag    string      `json:"tag"`
	Title  string      `json:"title"`
	Text   string      `json:"text,omitempty"`
	Charts []chartData `json:"charts"`
}

type chartData struct {
	Title string     `json:"title"`
	Kind  string     `json:"kind"`
	Data  *dataTable `json:"data"`
}

// view handles /view. It returns the named view's charts as Google
// Charts DataTable JSON.
func (a *App) view(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	v := findView(r.FormValue("name"))
	if v == nil {
		http.Error(w, "unknown view; valid names: "+strings.Join(viewTags(), ", "), http.StatusNotFound)
		return
	}
	data := a.Data()

	d := &viewData{Tag: v.Tag, Title: v.Title}
	if v.Text != nil {
		d.Text = v.Text(data)
	}
	for _, c := range v.Charts {
		d.Charts = append(d.Charts, chartData{
			Title: c.Title,
			Kind:  c.Kind,
			Data:  toDataTable(c.Table(data)),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		errorf(ctx, "encoding view %q: %v", v.Tag, err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benchboard</title>
<script src="https://www.gstatic.com/charts/loader.js"></script>
<style>
body { font-family: sans-serif; margin: 2em; }
#charts > div { margin-bottom: 2em; }
#text { max-width: 50em; }
</style>
</head>
<body>
<h1>Benchboard</h1>
<p>
<select id="view">
{{range .Views}}<option value="{{.Tag}}">{{.Title}}</option>
{{end}}</select>
<a id="export" href="/export.csv?name={{(index .Views 0).Tag}}">Export CSV</a>
<a href="/records">Records</a>
</p>
<h2 id="title"></h2>
<p id="text"></p>
<div id="charts"></div>
<script>
google.charts.load('current', {packages: ['corechart']});
google.charts.setOnLoadCallback(update);

var sel = document.getElementById('view');
sel.addEventListener('change', update);

function update() {
	var tag = sel.value;
	document.getElementById('export').href = '/export.csv?name=' + tag;
	fetch('/view?name=' + tag).then(function(resp) {
		return resp.json();
	}).then(draw);
}

function draw(view) {
	document.getElementById('title').textContent = view.title;
	document.getElementById('text').textContent = view.text || '';
	var charts = document.getElementById('charts');
	charts.textContent = '';
	view.charts.forEach(function(c) {
		var div = document.createElement('div');
		charts.appendChild(div);
		var data = new google.visualization.DataTable(c.data);
		var opts = {title: c.title, width: 900, height: 400};
		var chart;
		if (c.kind == 'pie') {
			chart = new google.visualization.PieChart(div);
		} else {
			chart = new google.visualization.ColumnChart(div);
		}
		chart.draw(data, opts);
	});
}
</script>
</body>
</html>
`))
