package controllers

import (
	"sync"

	"chefs-menu/internal/events"
	"chefs-menu/internal/logger"
	"chefs-menu/internal/models"
)

// MenuController turns user actions into store updates and owns the draft
// being edited on the creation screen.
type MenuController struct {
	store     *models.MenuStore
	publisher events.Publisher
	logger    logger.Logger

	mu    sync.RWMutex
	draft models.DraftEntry
}

// NewMenuController creates a controller around store. publisher receives
// draft reset notifications and may be nil.
func NewMenuController(store *models.MenuStore, publisher events.Publisher, log logger.Logger) *MenuController {
	if log == nil {
		log = logger.Nop()
	}
	return &MenuController{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

// ShowListing switches to the menu list. Any draft in progress is left
// behind and will not be restored.
func (mc *MenuController) ShowListing() {
	mc.store.SetView(models.ViewListing)
}

// ShowCreating opens the creation form. Coming from the listing starts an
// empty draft; asking again while the form is open keeps what was typed.
func (mc *MenuController) ShowCreating() {
	if mc.store.View() != models.ViewCreating {
		mc.resetDraft()
	}
	mc.store.SetView(models.ViewCreating)
}

// SetDraftName overwrites the draft's dish name.
func (mc *MenuController) SetDraftName(name string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.draft.Name = name
}

// SetDraftDescription overwrites the draft's description.
func (mc *MenuController) SetDraftDescription(description string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.draft.Description = description
}

// SetDraftCourse overwrites the draft's course selection.
func (mc *MenuController) SetDraftCourse(course string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.draft.Course = course
}

// SetDraftPrice overwrites the draft's raw price text.
func (mc *MenuController) SetDraftPrice(text string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.draft.PriceText = text
}

// Draft returns a snapshot of the draft.
func (mc *MenuController) Draft() models.DraftEntry {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.draft
}

// Submit stores the current draft as a menu entry and clears the draft.
// Nothing is validated: unparseable price text is stored as NaN.
func (mc *MenuController) Submit() models.MenuEntry {
	mc.mu.RLock()
	draft := mc.draft
	mc.mu.RUnlock()

	entry := draft.Entry()
	if !entry.Course.Valid() {
		mc.logger.Warning("MenuController", "menu item submitted without a known course", map[string]interface{}{
			"name":   entry.Name,
			"course": string(entry.Course),
		})
	}
	mc.store.AddEntry(entry)
	mc.resetDraft()

	mc.logger.Info("MenuController", "menu item added", map[string]interface{}{
		"name":       entry.Name,
		"course":     string(entry.Course),
		"price_text": draft.PriceText,
		"total":      mc.store.Len(),
	})

	return entry
}

// Entries exposes the store's snapshot for renderers.
func (mc *MenuController) Entries() []models.MenuEntry {
	return mc.store.Entries()
}

// View returns the screen currently selected in the store.
func (mc *MenuController) View() models.ViewState {
	return mc.store.View()
}

func (mc *MenuController) resetDraft() {
	mc.mu.Lock()
	mc.draft = models.DraftEntry{}
	mc.mu.Unlock()

	if mc.publisher != nil {
		mc.publisher.Publish(events.Event{Type: events.TypeDraftReset})
	}
}
