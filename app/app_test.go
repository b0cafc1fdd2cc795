// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benchboard/benchboard/report"
)

func testCollection() *report.Collection {
	return &report.Collection{
		Records: []report.Record{
			{Operation: "CreateCustomer", Technology: "Entity Framework", Period: "Before", Category: "CRUD", TimeMicros: 1000, MemoryKB: 10},
			{Operation: "CreateCustomer", Technology: "Dapper", Period: "Before", Category: "CRUD", TimeMicros: 200, MemoryKB: 2},
			{Operation: "ReadCustomer", Technology: "Entity Framework", Period: "Before", Category: "CRUD", TimeMicros: 2000, MemoryKB: 20},
			{Operation: "GetOrder", Technology: "Entity Framework", Period: "After", Category: "Query", TimeMicros: 500, MemoryKB: 5},
			{Operation: "GetOrder", Technology: "Dapper", Period: "After", Category: "Query", TimeMicros: 100, MemoryKB: 1},
		},
		Technologies: []string{"Entity Framework", "Dapper"},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	return newTestServerWith(t, testCollection())
}

func newTestServerWith(t *testing.T, data *report.Collection) *httptest.Server {
	t.Helper()
	a, err := New(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	a.RegisterOnMux(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func copyBody(dst io.Writer, resp *http.Response) (int64, error) {
	return io.Copy(dst, resp.Body)
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / = %v", resp.Status)
	}
	var body strings.Builder
	if _, err := copyBody(&body, resp); err != nil {
		t.Fatal(err)
	}
	for _, v := range views {
		if !strings.Contains(body.String(), v.Tag) {
			t.Errorf("index page missing view %q", v.Tag)
		}
	}
}

func TestIndexNotFound(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/nonexistent")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /nonexistent = %v, want 404", resp.Status)
	}
}

func TestViewJSON(t *testing.T) {
	ts := newTestServer(t)
	for _, v := range views {
		resp := get(t, ts.URL+"/view?name="+v.Tag)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET /view?name=%s = %v", v.Tag, resp.Status)
			continue
		}
		var d viewData
		if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
			t.Errorf("view %q: decoding: %v", v.Tag, err)
			continue
		}
		if d.Tag != v.Tag || d.Title != v.Title {
			t.Errorf("view %q: got tag %q title %q", v.Tag, d.Tag, d.Title)
		}
		if len(d.Charts) != len(v.Charts) {
			t.Errorf("view %q: got %d charts, want %d", v.Tag, len(d.Charts), len(v.Charts))
			continue
		}
		for i, c := range d.Charts {
			if c.Data == nil || len(c.Data.Cols) == 0 {
				t.Errorf("view %q chart %d: empty data table", v.Tag, i)
			}
		}
	}
}

// Header-only reports are valid input and load into an empty
// collection; every view must still serve it.
func TestViewJSONEmptyCollection(t *testing.T) {
	ts := newTestServerWith(t, &report.Collection{})
	for _, v := range views {
		resp := get(t, ts.URL+"/view?name="+v.Tag)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET /view?name=%s = %v", v.Tag, resp.Status)
			continue
		}
		var d viewData
		if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
			t.Errorf("view %q: decoding: %v", v.Tag, err)
		}
	}
}

func TestViewUnknown(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/view?name=nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /view?name=nope = %v, want 404", resp.Status)
	}
}

func TestExportCSV(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/export.csv?name=crud")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /export.csv?name=crud = %v", resp.Status)
	}
	var body strings.Builder
	if _, err := copyBody(&body, resp); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(body.String()), "\n")
	if lines[0] != "Operation,Entity Framework,Dapper" {
		t.Errorf("header = %q", lines[0])
	}
	// Two CRUD operations, one row each.
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3: %q", len(lines), body.String())
	}
}

func TestChartPNG(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/chart.png?name=tech-comparison")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /chart.png = %v", resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	var body strings.Builder
	n, err := copyBody(&body, resp)
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Error("empty chart body")
	}
}

func TestRecordsPage(t *testing.T) {
	ts := newTestServer(t)
	resp := get(t, ts.URL+"/records?period=After")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /records = %v", resp.Status)
	}
	var body strings.Builder
	if _, err := copyBody(&body, resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.String(), "GetOrder") {
		t.Error("records page missing after-period operation")
	}
	if strings.Contains(body.String(), "CreateCustomer") {
		t.Error("records page shows filtered-out operation")
	}
	// Values print in a single unit, never a prefix glued onto the
	// canonical unit.
	if !strings.Contains(body.String(), "500.0 µs") {
		t.Error("records page missing formatted time 500.0 µs")
	}
	if !strings.Contains(body.String(), "5.000 KB") {
		t.Error("records page missing formatted memory 5.000 KB")
	}
}
