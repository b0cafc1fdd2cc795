// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdb stores normalized benchmark records in a SQL
// database so they can be filtered and re-read by the serving layer.
package benchdb

import (
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/net/context"

	"github.com/benchboard/benchboard/report"
)

// DB is a high-level interface to a record database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRecord *sql.Stmt
}

// Open creates a DB backed by a SQL database. The parameters are the
// same as the parameters for sql.Open. Only sqlite3 is explicitly
// supported; other engines receive the same SQLite query syntax,
// which may or may not be compatible.
func Open(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if dataSourceName == ":memory:" {
		// An in-memory SQLite database exists per connection;
		// a second connection would see an empty database.
		db.SetMaxOpenConns(1)
	}
	d := &DB{sql: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

const createSQL = `
CREATE TABLE IF NOT EXISTS Records (
	Operation VARCHAR(255),
	Technology VARCHAR(255),
	Period VARCHAR(16),
	Category VARCHAR(16),
	TimeMicros DOUBLE,
	MemoryKB DOUBLE
);
CREATE INDEX IF NOT EXISTS RecordsTechPeriod ON Records(Technology, Period);
`

// createTables creates any missing tables on the connection in
// db.sql.
func (db *DB) createTables() error {
	for _, q := range strings.Split(createSQL, ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRecord, err = db.sql.Prepare(
		"INSERT INTO Records(Operation, Technology, Period, Category, TimeMicros, MemoryKB) VALUES (?, ?, ?, ?, ?, ?)")
	return err
}

// ReplaceRecords replaces the stored record set with recs in a single
// transaction. Either all of recs are stored or none are.
func (db *DB) ReplaceRecords(ctx context.Context, recs []report.Record) (err error) {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	if _, err = tx.Exec("DELETE FROM Records"); err != nil {
		return err
	}
	stmt := tx.Stmt(db.insertRecord)
	for _, r := range recs {
		if _, err = stmt.Exec(r.Operation, r.Technology, r.Period, r.Category, r.TimeMicros, r.MemoryKB); err != nil {
			return err
		}
	}
	return nil
}

// A Query filters stored records. Zero-valued fields match
// everything.
type Query struct {
	Technology string
	Period     string
	Category   string
}

// Records returns the stored records matching q, ordered by
// technology, period, and operation.
func (db *DB) Records(ctx context.Context, q Query) ([]report.Record, error) {
	query := "SELECT Operation, Technology, Period, Category, TimeMicros, MemoryKB FROM Records"
	var conds []string
	var args []interface{}
	add := func(col, val string) {
		if val != "" {
			conds = append(conds, col+" = ?")
			args = append(args, val)
		}
	}
	add("Technology", q.Technology)
	add("Period", q.Period)
	add("Category", q.Category)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY Technology, Period, Operation"

	rows, err := db.sql.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []report.Record
	for rows.Next() {
		var r report.Record
		if err := rows.Scan(&r.Operation, &r.Technology, &r.Period, &r.Category, &r.TimeMicros, &r.MemoryKB); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// CountRecords returns the number of stored records.
func (db *DB) CountRecords(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Records").Scan(&n)
	return n, err
}

// Close closes the database connection, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertRecord.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
