// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report loads benchmark reports into normalized records and
// builds the comparison tables behind the dashboard views.
package report

import "strings"

// A Period identifies which benchmark run a record came from.
type Period string

const (
	// Before is the pre-optimization run: full CRUD benchmarks.
	Before Period = "Before"
	// After is the post-optimization run: query benchmarks.
	After Period = "After"
)

// Record categories. Every before-period record is a CRUD operation
// and every after-period record is a query.
const (
	CategoryCRUD  = "CRUD"
	CategoryQuery = "Query"
)

// A Technology is one of the data-access approaches under comparison.
type Technology struct {
	// Tag is the short marker the benchmark tool prefixes to
	// method names in after-period reports (e.g. "EF" for
	// "EF: 'GetOrder'").
	Tag string
	// Name is the display name used in tables and charts.
	Name string
}

// DefaultTechnologies lists the three compared approaches in display
// order: the ORM, the raw low-level API, and the micro-ORM.
var DefaultTechnologies = []Technology{
	{Tag: "EF", Name: "Entity Framework"},
	{Tag: "ADO.NET", Name: "ADO.NET"},
	{Tag: "Dapper", Name: "Dapper"},
}

// A Record is one normalized benchmark measurement: one (technology,
// operation, period) triple with canonical time and memory values.
// Records are created at load time and read-only thereafter.
type Record struct {
	Operation  string
	Technology string // display name
	Period     string // Before or After
	Category   string // CRUD or Query
	TimeMicros float64
	MemoryKB   float64
}

// CRUDOperations is the fixed set of before-period operations, in the
// order the dashboard presents them.
var CRUDOperations = []string{
	"CreateCustomer", "ReadCustomer", "UpdateCustomer", "DeleteCustomer",
	"CreateProduct", "ReadProduct", "UpdateProduct", "DeleteProduct",
	"CreateOrder", "ReadOrder", "UpdateOrder", "DeleteOrder",
	"CreateOrderDetail", "ReadOrderDetail", "UpdateOrderDetail", "DeleteOrderDetail",
}

// OperationType classifies an operation name as Create, Read, Update,
// Delete, or Query by its prefix.
func OperationType(op string) string {
	for _, p := range []string{"Create", "Read", "Update", "Delete"} {
		if strings.HasPrefix(op, p) {
			return p
		}
	}
	return "Query"
}
