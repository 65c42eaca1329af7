package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Sentinels matched with errors.Is by callers that only care about the category.
var (
	ErrValidation = stderrors.New("validation error")
	ErrState      = stderrors.New("state error")
)

// ValidationError reports malformed input: unknown column, row out of range,
// duplicate column name, type mismatch or a value violating a column rule.
// It is always raised before any mutation.
type ValidationError struct {
	Table      string // table name
	Column     string // column name (empty if table-level)
	Value      any    // offending value (may be nil)
	Constraint string // "duplicate_column", "type_mismatch", "non_negative", etc.
	Reason     string // human-readable explanation (optional)
	RowIndex   int    // row position where the violation occurred (-1 if unknown)
}

func (e *ValidationError) Error() string {
	var parts []string

	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("validation failed in %s.%s", e.Table, e.Column))
	} else {
		parts = append(parts, fmt.Sprintf("validation failed in %s", e.Table))
	}

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StateError reports an operation attempted on a table in the wrong state:
// released, never initialized, or empty when rows are required.
type StateError struct {
	Table  string
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s on table %s: %s", e.Op, e.Table, e.Reason)
}

func (e *StateError) Unwrap() error {
	return ErrState
}

func NewDuplicateColumn(table, column string) *ValidationError {
	return &ValidationError{
		Table:      table,
		Column:     column,
		Constraint: "duplicate_column",
		Reason:     "column name already present in schema",
		RowIndex:   -1,
	}
}

func NewUnknownColumn(table string, column any) *ValidationError {
	return &ValidationError{
		Table:      table,
		Value:      column,
		Constraint: "unknown_column",
		Reason:     "column does not exist",
		RowIndex:   -1,
	}
}

func NewRowOutOfRange(table string, row, rowCount int) *ValidationError {
	return &ValidationError{
		Table:      table,
		Value:      row,
		Constraint: "row_range",
		Reason:     fmt.Sprintf("row must be within [0, %d)", rowCount),
		RowIndex:   -1,
	}
}

func NewTypeMismatch(table, column string, value any, expectedType string) *ValidationError {
	return &ValidationError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected type %s", expectedType),
		RowIndex:   -1,
	}
}

func NewNegativeValue(table, column string, value any) *ValidationError {
	return &ValidationError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "non_negative",
		Reason:     "value cannot be negative",
		RowIndex:   -1,
	}
}

func NewReleased(table, op string) *StateError {
	return &StateError{Table: table, Op: op, Reason: "table has been released"}
}

func NewEmptyTable(table, op string) *StateError {
	return &StateError{Table: table, Op: op, Reason: "table is empty"}
}
