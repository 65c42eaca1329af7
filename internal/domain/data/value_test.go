package data

import (
	"math"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestCompare_NaturalOrder(t *testing.T) {
	early := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"int less", Int(-2), Int(5), -1},
		{"int equal", Int(7), Int(7), 0},
		{"double greater", Double(2.5), Double(1.25), 1},
		{"nan first", Double(math.NaN()), Double(-1e9), -1},
		{"text lexicographic", Text("Chair"), Text("Desk"), -1},
		{"text case sensitive", Text("a"), Text("B"), 1},
		{"datetime chronological", DateTime(late), DateTime(early), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.a.Compare(tt.b), tt.want)
		})
	}
}

func TestEqual(t *testing.T) {
	utc := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	plus2 := utc.In(time.FixedZone("UTC+2", 2*60*60))

	assert.Assert(t, Int(101).Equal(Int(101)))
	assert.Assert(t, !Int(1).Equal(Double(1)))
	assert.Assert(t, DateTime(utc).Equal(DateTime(plus2)))
	assert.Assert(t, !Double(math.NaN()).Equal(Double(math.NaN())))
}

func TestZeroAndNegative(t *testing.T) {
	z := Zero(TypeDouble)
	assert.Equal(t, z.Type(), TypeDouble)
	assert.Equal(t, z.Double(), 0.0)

	assert.Assert(t, Int(-1).Negative())
	assert.Assert(t, Double(-0.01).Negative())
	assert.Assert(t, !Int(0).Negative())
	assert.Assert(t, !Text("-5").Negative())
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{
		"integer":  TypeInteger,
		"INT":      TypeInteger,
		"double":   TypeDouble,
		"Float":    TypeDouble,
		"text":     TypeText,
		"string":   TypeText,
		"datetime": TypeDateTime,
	} {
		got, err := ParseType(in)
		assert.NilError(t, err, in)
		assert.Equal(t, got, want, in)
	}

	_, err := ParseType("BOOL")
	assert.ErrorContains(t, err, "unknown column type")
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(TypeInteger, 42)
	assert.NilError(t, err)
	assert.Equal(t, v.Int(), int64(42))

	v, err = FromAny(TypeInteger, float64(7))
	assert.NilError(t, err)
	assert.Equal(t, v.Int(), int64(7))

	_, err = FromAny(TypeInteger, 7.5)
	assert.ErrorContains(t, err, "expected INTEGER")

	v, err = FromAny(TypeDouble, 3)
	assert.NilError(t, err)
	assert.Equal(t, v.Double(), 3.0)

	_, err = FromAny(TypeText, 12)
	assert.ErrorContains(t, err, "expected TEXT")

	v, err = FromAny(TypeDateTime, "2024-01-13")
	assert.NilError(t, err)
	assert.Assert(t, v.DateTime().Equal(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)))

	_, err = FromAny(TypeDateTime, "yesterday")
	assert.ErrorContains(t, err, "cannot parse")
}

func TestRowCopyIsIndependent(t *testing.T) {
	row := NewRow([]Type{TypeInteger, TypeText})
	row.Values[1] = Text("x")

	dup := row.Copy()
	dup.Values[1] = Text("y")

	assert.Equal(t, row.Values[1].Text(), "x")
	assert.DeepEqual(t, row.Interfaces(), []any{int64(0), "x"})
}
