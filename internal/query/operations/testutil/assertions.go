package testutil

import (
	"errors"
	"testing"

	domainerrors "github.com/leengari/mini-tables/internal/domain/errors"
	"github.com/leengari/mini-tables/internal/domain/schema"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	if actual := table.RowCount(); actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if the table has the expected number of columns
func AssertColumnCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	if actual := table.ColumnCount(); actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a column exists in a table
func AssertColumnExists(t *testing.T, table *schema.Table, column, context string) {
	t.Helper()
	if _, err := table.ColumnIndex(column); err != nil {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertValidationError checks that err is a ValidationError
func AssertValidationError(t *testing.T, err error, context string) {
	t.Helper()
	if !errors.Is(err, domainerrors.ErrValidation) {
		t.Errorf("%s: expected validation error, got: %v", context, err)
	}
}

// AssertStateError checks that err is a StateError
func AssertStateError(t *testing.T, err error, context string) {
	t.Helper()
	if !errors.Is(err, domainerrors.ErrState) {
		t.Errorf("%s: expected state error, got: %v", context, err)
	}
}
