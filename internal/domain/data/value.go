package data

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Type is the closed set of cell types a column can declare.
type Type int

const (
	TypeInteger Type = iota + 1
	TypeDouble
	TypeText
	TypeDateTime
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeDouble:
		return "DOUBLE"
	case TypeText:
		return "TEXT"
	case TypeDateTime:
		return "DATETIME"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t >= TypeInteger && t <= TypeDateTime
}

// ParseType accepts the type names used in data files (case-insensitive),
// including the INT/FLOAT/STRING spellings.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INTEGER", "INT":
		return TypeInteger, nil
	case "DOUBLE", "FLOAT":
		return TypeDouble, nil
	case "TEXT", "STRING":
		return TypeText, nil
	case "DATETIME", "DATE_TIME", "TIMESTAMP":
		return TypeDateTime, nil
	}
	return 0, fmt.Errorf("unknown column type %q", s)
}

// Value is a single typed cell. Only the field selected by typ is meaningful.
type Value struct {
	typ Type
	i   int64
	f   float64
	s   string
	t   time.Time
}

func Int(v int64) Value          { return Value{typ: TypeInteger, i: v} }
func Double(v float64) Value     { return Value{typ: TypeDouble, f: v} }
func Text(v string) Value        { return Value{typ: TypeText, s: v} }
func DateTime(v time.Time) Value { return Value{typ: TypeDateTime, t: v} }

// Zero returns the unset value for a column of type t.
func Zero(t Type) Value {
	return Value{typ: t}
}

func (v Value) Type() Type { return v.typ }

func (v Value) Int() int64          { return v.i }
func (v Value) Double() float64     { return v.f }
func (v Value) Text() string        { return v.s }
func (v Value) DateTime() time.Time { return v.t }

// Negative reports whether a numeric value is below zero. Non-numeric values
// are never negative.
func (v Value) Negative() bool {
	switch v.typ {
	case TypeInteger:
		return v.i < 0
	case TypeDouble:
		return v.f < 0
	}
	return false
}

// Compare orders two values of the same type: numeric for INTEGER and DOUBLE,
// lexicographic for TEXT, chronological for DATETIME. NaN sorts first.
// Values of different types are ordered by type.
func (v Value) Compare(o Value) int {
	if v.typ != o.typ {
		return cmp.Compare(v.typ, o.typ)
	}
	switch v.typ {
	case TypeInteger:
		return cmp.Compare(v.i, o.i)
	case TypeDouble:
		return cmp.Compare(v.f, o.f)
	case TypeText:
		return strings.Compare(v.s, o.s)
	case TypeDateTime:
		return v.t.Compare(o.t)
	}
	return 0
}

// Equal reports whether two values have the same type and the same content.
// DATETIME values are equal when they denote the same instant.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	if v.typ == TypeDouble && math.IsNaN(v.f) {
		return false
	}
	return v.Compare(o) == 0
}

// Interface returns the underlying Go value.
func (v Value) Interface() any {
	switch v.typ {
	case TypeInteger:
		return v.i
	case TypeDouble:
		return v.f
	case TypeText:
		return v.s
	case TypeDateTime:
		return v.t
	}
	return nil
}

func (v Value) String() string {
	switch v.typ {
	case TypeInteger:
		return strconv.FormatInt(v.i, 10)
	case TypeDouble:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case TypeText:
		return v.s
	case TypeDateTime:
		if v.t.IsZero() {
			return ""
		}
		return v.t.Format(time.RFC3339)
	}
	return "<nil>"
}

// dateTimeLayouts are tried in order when a DATETIME arrives as a string.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FromAny converts a loosely typed value (as produced by YAML or JSON
// decoding) into a Value of type t.
func FromAny(t Type, raw any) (Value, error) {
	switch t {
	case TypeInteger:
		if n, ok := normalizeToInt64(raw); ok {
			return Int(n), nil
		}
	case TypeDouble:
		switch x := raw.(type) {
		case float64:
			return Double(x), nil
		case float32:
			return Double(float64(x)), nil
		default:
			if n, ok := normalizeToInt64(raw); ok {
				return Double(float64(n)), nil
			}
		}
	case TypeText:
		if s, ok := raw.(string); ok {
			return Text(s), nil
		}
	case TypeDateTime:
		switch x := raw.(type) {
		case time.Time:
			return DateTime(x), nil
		case string:
			for _, layout := range dateTimeLayouts {
				if ts, err := time.Parse(layout, x); err == nil {
					return DateTime(ts), nil
				}
			}
			return Value{}, fmt.Errorf("cannot parse %q as DATETIME", x)
		}
	default:
		return Value{}, fmt.Errorf("unknown column type %v", t)
	}
	return Value{}, fmt.Errorf("expected %s, got %T", t, raw)
}

// normalizeToInt64 converts the integer shapes decoders produce to int64.
// Floats are accepted only when they carry no fractional part.
func normalizeToInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v), true
		}
	}
	return 0, false
}
