package models

import (
	"fmt"
	"testing"

	"chefs-menu/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(event events.Event) {
	r.events = append(r.events, event)
}

func (r *recorder) types() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func TestMenuStore_StartsEmptyOnListing(t *testing.T) {
	store := NewMenuStore(nil, nil)

	assert.Empty(t, store.Entries())
	assert.Zero(t, store.Len())
	assert.Equal(t, ViewListing, store.View())
}

func TestMenuStore_AddEntryKeepsInsertionOrder(t *testing.T) {
	store := NewMenuStore(nil, nil)

	const n = 25
	for i := 0; i < n; i++ {
		store.AddEntry(MenuEntry{Name: fmt.Sprintf("dish-%d", i), Price: float64(i)})
	}

	entries := store.Entries()
	require.Len(t, entries, n)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("dish-%d", i), e.Name)
	}
}

func TestMenuStore_AddEntryAllowsDuplicatesAndBlanks(t *testing.T) {
	store := NewMenuStore(nil, nil)

	store.AddEntry(MenuEntry{})
	store.AddEntry(MenuEntry{})

	assert.Equal(t, 2, store.Len())
}

func TestMenuStore_AddEntryReturnsToListing(t *testing.T) {
	for _, start := range []ViewState{ViewListing, ViewCreating} {
		store := NewMenuStore(nil, nil)
		store.SetView(start)

		store.AddEntry(MenuEntry{Name: "Tart", Course: CourseDessert})

		assert.Equal(t, ViewListing, store.View(), "start %s", start)
	}
}

func TestMenuStore_EntriesIsACopy(t *testing.T) {
	store := NewMenuStore(nil, nil)
	store.AddEntry(MenuEntry{Name: "Original"})

	entries := store.Entries()
	entries[0].Name = "Changed"

	assert.Equal(t, "Original", store.Entries()[0].Name)
}

func TestMenuStore_SetView(t *testing.T) {
	store := NewMenuStore(nil, nil)

	store.SetView(ViewCreating)
	assert.Equal(t, ViewCreating, store.View())

	store.SetView(ViewCreating)
	assert.Equal(t, ViewCreating, store.View())

	store.SetView(ViewListing)
	assert.Equal(t, ViewListing, store.View())
}

func TestMenuStore_PublishesChanges(t *testing.T) {
	rec := &recorder{}
	store := NewMenuStore(rec, nil)

	store.SetView(ViewCreating)
	store.AddEntry(MenuEntry{Name: "Steak", Course: CourseMain, Price: 21})

	assert.Equal(t, []string{
		events.TypeViewChanged,
		events.TypeEntryAdded,
		events.TypeViewChanged,
	}, rec.types())
	assert.Equal(t, 1, rec.events[1].Data["count"])
	assert.Equal(t, "listing", rec.events[2].Data["to"])
}

func TestMenuStore_SubscribersSeeNewState(t *testing.T) {
	bus := events.NewBus(nil)
	store := NewMenuStore(bus, nil)

	var seen int
	bus.Subscribe(events.TypeEntryAdded, events.HandlerFunc{ID: "len", Fn: func(events.Event) {
		seen = store.Len()
	}})

	store.AddEntry(MenuEntry{Name: "Salad"})
	assert.Equal(t, 1, seen)
}

func TestViewState_String(t *testing.T) {
	assert.Equal(t, "listing", ViewListing.String())
	assert.Equal(t, "creating", ViewCreating.String())
	assert.Equal(t, "unknown", ViewState(9).String())
}
