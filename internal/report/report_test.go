//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleTable() Table {
	t := Table{Columns: []string{"pizza_name", "total_revenue"}}
	t.Append("The Thai Chicken Pizza", "43434.25")
	t.Append("The Barbecue Chicken Pizza", "42768.00")
	t.Append("The California Chicken Pizza", "41409.50")
	return t
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTable(), "csv"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != "pizza_name,total_revenue" {
		t.Errorf("header = %q", lines[0])
	}
	// Row order must survive rendering.
	if lines[1] != "The Thai Chicken Pizza,43434.25" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[3] != "The California Chicken Pizza,41409.50" {
		t.Errorf("last row = %q", lines[3])
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTable(), "json"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var records []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0]["pizza_name"] != "The Thai Chicken Pizza" {
		t.Errorf("first record = %v", records[0])
	}
	if records[2]["total_revenue"] != "41409.50" {
		t.Errorf("last record = %v", records[2])
	}
}

func TestRenderJSONEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	empty := Table{Columns: []string{"order_hour", "total_orders"}}
	if err := Render(&buf, empty, "json"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty table rendered as %q, want []", buf.String())
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTable(), "table"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "The Thai Chicken Pizza") {
		t.Error("table output missing row data")
	}
	if !strings.Contains(out, "(3 rows)") {
		t.Error("table output missing row count footer")
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTable(), "markdown"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "| pizza_name |") && !strings.Contains(out, "pizza_name") {
		t.Error("markdown output missing header")
	}
	if !strings.Contains(out, "|") {
		t.Error("markdown output has no table delimiters")
	}
}

func TestRenderCSVQuoting(t *testing.T) {
	tbl := Table{Columns: []string{"ingredients"}}
	tbl.Append("Sliced Ham, Pineapple")

	var buf bytes.Buffer
	if err := Render(&buf, tbl, "csv"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"Sliced Ham, Pineapple"`) {
		t.Errorf("comma-bearing value not quoted: %q", buf.String())
	}
}
