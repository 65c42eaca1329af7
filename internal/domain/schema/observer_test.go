package schema

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/mini-tables/internal/domain/data"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	tbl := New("t")
	observer := &MockObserver{}

	tbl.AddObserver(observer)

	if len(tbl.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(tbl.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	tbl := New("t")
	observer := &MockObserver{}

	tbl.AddObserver(observer)
	tbl.RemoveObserver(observer)

	if len(tbl.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(tbl.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	tbl := New("t")

	// Should not panic
	tbl.notify(EventRowAdded, 0)
}

func TestEventsFollowOperations(t *testing.T) {
	tbl := New("t")
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}
	tbl.AddObserver(observer1)
	tbl.AddObserver(observer2)

	_, err := tbl.AddColumn("id", ColumnTypeInteger, "")
	assert.NilError(t, err)
	row, err := tbl.AddRow()
	assert.NilError(t, err)
	assert.NilError(t, tbl.SetValue(0, row, data.Int(7)))
	assert.NilError(t, tbl.SortRowsStable(func(a, b data.Row) int { return 0 }))
	assert.NilError(t, tbl.Release())

	var got []EventType
	for _, e := range observer1.Events {
		got = append(got, e.Type)
		assert.Equal(t, e.TableID, tbl.ID())
		assert.Assert(t, !e.Timestamp.IsZero())
	}
	assert.DeepEqual(t, got, []EventType{
		EventColumnAdded, EventRowAdded, EventValueSet, EventRowsSorted, EventReleased,
	})
	assert.Equal(t, len(observer2.Events), 5)
	assert.Equal(t, observer1.Events[2].Data, CellRef{Column: 0, Row: 0})
}

func TestFailedOperationsEmitNothing(t *testing.T) {
	tbl := New("t")
	_, _ = tbl.AddColumn("id", ColumnTypeInteger, "", NonNegative())
	_, _ = tbl.AddRow()

	observer := &MockObserver{}
	tbl.AddObserver(observer)

	assert.Assert(t, tbl.SetValue(0, 0, data.Int(-1)) != nil)
	_, err := tbl.AddColumn("id", ColumnTypeText, "")
	assert.Assert(t, err != nil)

	assert.Equal(t, len(observer.Events), 0)
}
