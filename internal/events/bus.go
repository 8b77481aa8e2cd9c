// Package events carries menu state change notifications from the store to
// whatever renders it. Dispatch is synchronous: Publish returns only after
// every subscriber has run, so a view is up to date once the user action
// that triggered the change has finished.
package events

import (
	"fmt"
	"sync"
	"time"

	"chefs-menu/internal/logger"
)

const (
	TypeEntryAdded  = "menu.entry_added"
	TypeViewChanged = "view.changed"
	TypeDraftReset  = "draft.reset"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type EventHandler interface {
	Handle(event Event)
	GetID() string
}

// Publisher is the side of the bus the store depends on.
type Publisher interface {
	Publish(event Event)
}

// HandlerFunc adapts a plain function into an EventHandler.
type HandlerFunc struct {
	ID string
	Fn func(Event)
}

// Handle calls the wrapped function
func (h HandlerFunc) Handle(event Event) { h.Fn(event) }

// GetID returns the handler identifier
func (h HandlerFunc) GetID() string { return h.ID }

type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	logger      logger.Logger
	closed      bool
}

// NewBus creates an empty synchronous event bus
func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus{
		subscribers: make(map[string][]EventHandler),
		logger:      log,
	}
}

// Publish delivers event to every subscriber of its type, in subscription order
func (b *Bus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	handlers := make([]EventHandler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(handler, event)
	}
}

// Subscribe registers handler for eventType
func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Unsubscribe removes the handler with the same ID from eventType
func (b *Bus) Unsubscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown drops all subscribers; later publishes are ignored.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.subscribers = make(map[string][]EventHandler)
}

func (b *Bus) dispatch(handler EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"handler": handler.GetID(),
				"event":   event.Type,
			})
		}
	}()
	handler.Handle(event)
}
