//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import "fmt"

// ReferentialIntegrityError reports a row whose foreign key references
// a key that does not exist in the target relation.
type ReferentialIntegrityError struct {
	// Operation names the metric that hit the dangling reference, or
	// "validate" when found during snapshot validation.
	Operation string
	// Relation is the relation holding the dangling reference.
	Relation string
	// RowID identifies the offending row.
	RowID string
	// Column is the foreign key column.
	Column string
	// Missing is the referenced key that was not found.
	Missing string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s: %s row %s: %s references missing key %q",
		e.Operation, e.Relation, e.RowID, e.Column, e.Missing)
}

// MalformedRowError reports a row that fails a basic type or value
// constraint, such as a negative price or non-positive quantity.
type MalformedRowError struct {
	Relation string
	RowID    string
	Reason   string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s row %s: %s", e.Relation, e.RowID, e.Reason)
}
