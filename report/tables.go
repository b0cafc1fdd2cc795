// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// buildTable converts records into a go-gg table. Period and Category
// columns are only meaningful when both periods are present, so they
// are added only for combined tables.
func buildTable(recs []Record, withPeriod bool) *table.Table {
	n := len(recs)
	ops := make([]string, n)
	techs := make([]string, n)
	periods := make([]string, n)
	cats := make([]string, n)
	times := make([]float64, n)
	mems := make([]float64, n)
	for i, r := range recs {
		ops[i] = r.Operation
		techs[i] = r.Technology
		periods[i] = r.Period
		cats[i] = r.Category
		times[i] = r.TimeMicros
		mems[i] = r.MemoryKB
	}
	b := new(table.Builder).Add("Operation", ops).Add("Technology", techs)
	if withPeriod {
		b.Add("Period", periods).Add("Category", cats)
	}
	return b.Add("TimeMicros", times).Add("MemoryKB", mems).Done()
}

// crudRecords returns the before-period records for the fixed CRUD
// operation set, ordered by operation and then by technology display
// order. Technologies missing an operation are skipped.
func (c *Collection) crudRecords() []Record {
	type key struct{ op, tech string }
	idx := make(map[key]Record)
	for _, r := range c.Records {
		if r.Period == string(Before) {
			idx[key{r.Operation, r.Technology}] = r
		}
	}
	var out []Record
	for _, op := range CRUDOperations {
		for _, tech := range c.Technologies {
			if r, ok := idx[key{op, tech}]; ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// queryRecords returns the after-period records in load order.
func (c *Collection) queryRecords() []Record {
	var out []Record
	for _, r := range c.Records {
		if r.Period == string(After) {
			out = append(out, r)
		}
	}
	return out
}

// CRUDTable returns the before-period comparison table with columns
// Operation, Technology, TimeMicros, MemoryKB.
func (c *Collection) CRUDTable() *table.Table {
	return buildTable(c.crudRecords(), false)
}

// QueryTable returns the after-period comparison table with the same
// columns as CRUDTable.
func (c *Collection) QueryTable() *table.Table {
	return buildTable(c.queryRecords(), false)
}

// CombinedTable returns both periods with additional Period and
// Category columns.
func (c *Collection) CombinedTable() *table.Table {
	recs := c.crudRecords()
	recs = append(recs, c.queryRecords()...)
	return buildTable(recs, true)
}

// WithOperationType returns t with an added OperationType column
// derived from each row's Operation.
func WithOperationType(t *table.Table) *table.Table {
	ops := t.MustColumn("Operation").([]string)
	types := make([]string, len(ops))
	for i, op := range ops {
		types[i] = OperationType(op)
	}
	return table.NewBuilder(t).Add("OperationType", types).Done()
}

// emptyAgg builds the zero-row table an aggregation would produce:
// the string group columns followed by the given value columns.
// ggstat's aggregators cannot derive column types from an empty
// grouping, so the zero-row shape is built directly.
func emptyAgg(groupCols []string, valueCols []string, value func() table.Slice) *table.Table {
	b := new(table.Builder)
	for _, c := range groupCols {
		b.Add(c, []string{})
	}
	for _, c := range valueCols {
		b.Add(c, value())
	}
	return b.Done()
}

func emptyMeans(groupCols ...string) *table.Table {
	return emptyAgg(groupCols, []string{"mean TimeMicros", "mean MemoryKB"},
		func() table.Slice { return []float64{} })
}

func emptyCounts(groupCols ...string) *table.Table {
	return emptyAgg(groupCols, []string{"Count"},
		func() table.Slice { return []int{} })
}

// MeanByTechnology aggregates t to one row per technology with
// columns Technology, "mean TimeMicros", "mean MemoryKB".
func MeanByTechnology(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return emptyMeans("Technology")
	}
	g := ggstat.Agg("Technology")(ggstat.AggMean("TimeMicros", "MemoryKB")).F(t)
	return table.Flatten(g)
}

// MeanByTechnologyPeriod aggregates t to one row per (technology,
// period) pair.
func MeanByTechnologyPeriod(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return emptyMeans("Technology", "Period")
	}
	g := ggstat.Agg("Technology", "Period")(ggstat.AggMean("TimeMicros", "MemoryKB")).F(t)
	return table.Flatten(g)
}

// MeanByOperationType aggregates t to one row per (operation type,
// technology) pair.
func MeanByOperationType(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return emptyMeans("OperationType", "Technology")
	}
	t = WithOperationType(t)
	g := ggstat.Agg("OperationType", "Technology")(ggstat.AggMean("TimeMicros", "MemoryKB")).F(t)
	return table.Flatten(g)
}

// CountByTechnology aggregates t to one row per technology with a
// Count column.
func CountByTechnology(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return emptyCounts("Technology")
	}
	g := ggstat.Agg("Technology")(ggstat.AggCount("Count")).F(t)
	return table.Flatten(g)
}

// CountByTechnologyPeriod aggregates t to one row per (technology,
// period) pair with a Count column.
func CountByTechnologyPeriod(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return emptyCounts("Technology", "Period")
	}
	g := ggstat.Agg("Technology", "Period")(ggstat.AggCount("Count")).F(t)
	return table.Flatten(g)
}
