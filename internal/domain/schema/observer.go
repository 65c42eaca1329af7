package schema

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a table lifecycle or mutation event.
type EventType string

const (
	EventColumnAdded EventType = "column_added"
	EventRowAdded    EventType = "row_added"
	EventValueSet    EventType = "value_set"
	EventRowsSorted  EventType = "rows_sorted"
	EventReleased    EventType = "released"
)

// Event is delivered to observers after a table operation completes.
type Event struct {
	Type      EventType
	TableID   uuid.UUID
	Table     string
	Timestamp time.Time
	Data      any // operation-specific payload (column name, row position, ...)
}

// Observer receives table events. Observers run synchronously inside the
// operation that emitted the event and must not mutate the table.
type Observer interface {
	OnEvent(event Event)
}

// AddObserver registers an observer for this table's events.
func (t *Table) AddObserver(o Observer) {
	t.observers = append(t.observers, o)
}

// RemoveObserver unregisters a previously added observer.
func (t *Table) RemoveObserver(o Observer) {
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(eventType EventType, payload any) {
	if len(t.observers) == 0 {
		return
	}
	event := Event{
		Type:      eventType,
		TableID:   t.id,
		Table:     t.name,
		Timestamp: time.Now(),
		Data:      payload,
	}
	for _, o := range t.observers {
		o.OnEvent(event)
	}
}
