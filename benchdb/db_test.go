// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdb

import (
	"reflect"
	"testing"

	"golang.org/x/net/context"

	_ "github.com/mattn/go-sqlite3"

	"github.com/benchboard/benchboard/report"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var testRecords = []report.Record{
	{Operation: "CreateCustomer", Technology: "Entity Framework", Period: "Before", Category: "CRUD", TimeMicros: 1000, MemoryKB: 10},
	{Operation: "CreateCustomer", Technology: "Dapper", Period: "Before", Category: "CRUD", TimeMicros: 200, MemoryKB: 2},
	{Operation: "GetOrder", Technology: "Entity Framework", Period: "After", Category: "Query", TimeMicros: 500, MemoryKB: 5},
}

func TestReplaceAndQuery(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	if err := db.ReplaceRecords(ctx, testRecords); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}
	n, err := db.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if n != len(testRecords) {
		t.Errorf("CountRecords = %d, want %d", n, len(testRecords))
	}

	got, err := db.Records(ctx, Query{Technology: "Entity Framework", Period: "After"})
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	want := []report.Record{testRecords[2]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %+v, want %+v", got, want)
	}
}

func TestRecordsOrdering(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	if err := db.ReplaceRecords(ctx, testRecords); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}

	got, err := db.Records(ctx, Query{})
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	// Ordered by technology, then period, then operation.
	want := []report.Record{testRecords[1], testRecords[2], testRecords[0]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %+v, want %+v", got, want)
	}
}

func TestReplaceRecordsReplaces(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	if err := db.ReplaceRecords(ctx, testRecords); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}
	if err := db.ReplaceRecords(ctx, testRecords[:1]); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}
	n, err := db.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if n != 1 {
		t.Errorf("CountRecords = %d, want 1", n)
	}
}
