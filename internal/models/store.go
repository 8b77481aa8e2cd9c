package models

import (
	"sync"

	"chefs-menu/internal/events"
	"chefs-menu/internal/logger"
)

// ViewState selects which screen is shown.
type ViewState int

const (
	ViewListing ViewState = iota
	ViewCreating
)

// String returns the view name used in logs
func (v ViewState) String() string {
	switch v {
	case ViewListing:
		return "listing"
	case ViewCreating:
		return "creating"
	default:
		return "unknown"
	}
}

// MenuStore owns the session's menu list and current view. The list only
// ever grows; entries are copied in and out so callers cannot alter them.
type MenuStore struct {
	mu        sync.RWMutex
	entries   []MenuEntry
	view      ViewState
	publisher events.Publisher
	logger    logger.Logger
}

// NewMenuStore creates an empty store showing the listing. publisher may be
// nil when nobody needs change notifications.
func NewMenuStore(publisher events.Publisher, log logger.Logger) *MenuStore {
	if log == nil {
		log = logger.Nop()
	}
	return &MenuStore{
		entries:   make([]MenuEntry, 0),
		view:      ViewListing,
		publisher: publisher,
		logger:    log,
	}
}

// AddEntry appends entry and returns to the listing. It never rejects.
func (s *MenuStore) AddEntry(entry MenuEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	count := len(s.entries)
	previous := s.view
	s.view = ViewListing
	s.mu.Unlock()

	s.logger.Debug("MenuStore", "entry added", map[string]interface{}{
		"name":   entry.Name,
		"course": string(entry.Course),
		"count":  count,
	})

	s.publish(events.TypeEntryAdded, map[string]interface{}{
		"index": count - 1,
		"count": count,
	})
	s.publish(events.TypeViewChanged, map[string]interface{}{
		"from": previous.String(),
		"to":   ViewListing.String(),
	})
}

// SetView replaces the current view unconditionally.
func (s *MenuStore) SetView(view ViewState) {
	s.mu.Lock()
	previous := s.view
	s.view = view
	s.mu.Unlock()

	s.logger.Debug("MenuStore", "view changed", map[string]interface{}{
		"from": previous.String(),
		"to":   view.String(),
	})

	s.publish(events.TypeViewChanged, map[string]interface{}{
		"from": previous.String(),
		"to":   view.String(),
	})
}

// Entries returns a copy of the menu in insertion order.
func (s *MenuStore) Entries() []MenuEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MenuEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of menu entries
func (s *MenuStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// View returns the current view state
func (s *MenuStore) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *MenuStore) publish(eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(events.Event{Type: eventType, Data: data})
}
