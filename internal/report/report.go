//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package report renders metric result tables. Row order in a Table is
// part of the metric contract and every renderer preserves it.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table is an ordered result set with named columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Append adds one row. The caller is responsible for matching the
// column count; renderers do not pad short rows.
func (t *Table) Append(values ...string) {
	t.Rows = append(t.Rows, values)
}

// Render writes the table in the given format: "table" (default),
// "csv", "json", or "markdown"/"md".
func Render(w io.Writer, t Table, format string) error {
	switch format {
	case "csv":
		return renderCSV(w, t)
	case "json":
		return renderJSON(w, t)
	case "md", "markdown":
		renderPretty(w, t, true)
		return nil
	default:
		renderPretty(w, t, false)
		return nil
	}
}

func renderPretty(w io.Writer, t Table, markdown bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		tw.AppendRow(row)
	}

	if markdown {
		tw.RenderMarkdown()
		return
	}
	tw.Render()
	fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
}

func renderCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, t Table) error {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(r) {
				rec[col] = r[i]
			}
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
