// Copyright 2025 The Benchboard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/benchboard/benchboard/report"
)

// A chart describes one rendered chart within a view. Table returns
// the chart's data with a string category column first and one or
// more float64 series columns after it.
type chart struct {
	Title string
	Kind  string // "bar" or "pie"
	Table func(c *report.Collection) *table.Table
}

// A view is one selectable dashboard page: a title, one or more
// charts, and an optional block of explanatory text.
type view struct {
	Tag    string
	Title  string
	Charts []chart
	Text   func(c *report.Collection) string
}

// views lists every selectable view in display order. Tags are
// stable; they appear in URLs.
var views = []view{
	{
		Tag:   "before-after-complete",
		Title: "Before vs. After: All Operations",
		Charts: []chart{
			{
				Title: "Execution time (µs)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(withSeriesLabel(c.CombinedTable()), "Operation", "Series", "TimeMicros")
				},
			},
			{
				Title: "Allocated memory (KB)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(withSeriesLabel(c.CombinedTable()), "Operation", "Series", "MemoryKB")
				},
			},
		},
		Text: improvementText,
	},
	{
		Tag:   "crud",
		Title: "CRUD Operations (Before)",
		Charts: []chart{
			{
				Title: "Execution time (µs)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(c.CRUDTable(), "Operation", "Technology", "TimeMicros")
				},
			},
			{
				Title: "Allocated memory (KB)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(c.CRUDTable(), "Operation", "Technology", "MemoryKB")
				},
			},
		},
	},
	{
		Tag:   "query",
		Title: "Optimized Queries (After)",
		Charts: []chart{
			{
				Title: "Execution time (µs)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(c.QueryTable(), "Operation", "Technology", "TimeMicros")
				},
			},
			{
				Title: "Allocated memory (KB)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(c.QueryTable(), "Operation", "Technology", "MemoryKB")
				},
			},
		},
	},
	{
		Tag:   "improvement",
		Title: "Overall Improvement",
		Charts: []chart{
			{
				Title: "Mean execution time by period (µs)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(report.MeanByTechnologyPeriod(c.CombinedTable()), "Technology", "Period", "mean TimeMicros")
				},
			},
		},
		Text: improvementText,
	},
	{
		Tag:   "tech-comparison",
		Title: "Technology Comparison",
		Charts: []chart{
			{
				Title: "Mean execution time (µs)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return twoCol(report.MeanByTechnology(c.CombinedTable()), "Technology", "mean TimeMicros", "Mean time (µs)")
				},
			},
			{
				Title: "Mean allocated memory (KB)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return twoCol(report.MeanByTechnology(c.CombinedTable()), "Technology", "mean MemoryKB", "Mean memory (KB)")
				},
			},
		},
	},
	{
		Tag:   "operation-type",
		Title: "By Operation Type",
		Charts: []chart{
			{
				Title: "Mean execution time (µs)",
				Kind:  "bar",
				Table: func(c *report.Collection) *table.Table {
					return pivot(report.MeanByOperationType(c.CombinedTable()), "OperationType", "Technology", "mean TimeMicros")
				},
			},
		},
	},
	{
		Tag:   "summary",
		Title: "Summary",
		Charts: []chart{
			{
				Title: "Measurements per technology",
				Kind:  "pie",
				Table: func(c *report.Collection) *table.Table {
					return twoCol(report.CountByTechnology(c.CombinedTable()), "Technology", "Count", "Measurements")
				},
			},
		},
		Text: summaryText,
	},
}

// viewTags returns every view tag in display order.
func viewTags() []string {
	tags := make([]string, len(views))
	for i, v := range views {
		tags[i] = v.Tag
	}
	return tags
}

// findView returns the view with the given tag, or nil.
func findView(tag string) *view {
	for i := range views {
		if views[i].Tag == tag {
			return &views[i]
		}
	}
	return nil
}

func improvementText(c *report.Collection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mean execution time went from %.1f µs before optimization to %.1f µs after, an improvement of %.1f%%.",
		c.MeanTime(report.Before), c.MeanTime(report.After), c.ImprovementPercent())
	return b.String()
}

func summaryText(c *report.Collection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d measurements across %d technologies. ", len(c.Records), len(c.Technologies))
	fmt.Fprintf(&b, "Geometric mean execution time: %.1f µs before, %.1f µs after. ",
		c.GeoMeanTime(report.Before), c.GeoMeanTime(report.After))
	fmt.Fprintf(&b, "Overall improvement: %.1f%%.", c.ImprovementPercent())
	return b.String()
}
