//-------------------------------------------------------------------------
//
// pgEdge Pizza Analytics
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package engine

import "fmt"

// EmptyInputError reports an aggregate that was requested over zero
// rows. Operations that need at least one row fail with this rather
// than returning a sentinel value.
type EmptyInputError struct {
	// Operation is the metric that was requested.
	Operation string
	// Relation is the relation that was empty.
	Relation string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no rows in %s", e.Operation, e.Relation)
}
