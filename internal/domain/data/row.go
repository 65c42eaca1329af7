package data

// Row is a single table row: one Value per column, indexed by column ordinal.
type Row struct {
	Values []Value
}

// NewRow creates a row holding the unset value of each given type.
func NewRow(types []Type) Row {
	values := make([]Value, len(types))
	for i, t := range types {
		values[i] = Zero(t)
	}
	return Row{Values: values}
}

// Copy creates an independent copy of the row to prevent mutation.
func (r Row) Copy() Row {
	values := make([]Value, len(r.Values))
	copy(values, r.Values)
	return Row{Values: values}
}

// Interfaces returns the row's cells as plain Go values, in column order.
func (r Row) Interfaces() []any {
	out := make([]any, len(r.Values))
	for i, v := range r.Values {
		out[i] = v.Interface()
	}
	return out
}
