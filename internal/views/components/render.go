package components

import (
	"fmt"
	"iter"

	"chefs-menu/internal/models"
)

const (
	EmptyMenuText = "No menu items available"
	MenuHeading   = "Menu"
)

// ItemBlock is the display text of one menu entry.
type ItemBlock struct {
	Name        string
	Description string
	Course      string
	Price       string
}

// Lines returns the block's text in display order.
func (b ItemBlock) Lines() []string {
	return []string{b.Name, b.Description, b.Course, b.Price}
}

// NewItemBlock formats a single entry for display.
func NewItemBlock(entry models.MenuEntry) ItemBlock {
	return ItemBlock{
		Name:        entry.Name,
		Description: entry.Description,
		Course:      string(entry.Course),
		Price:       models.FormatPrice(entry.Price),
	}
}

// ItemBlocks yields one block per entry in order. Ranging over the result
// again starts from the first entry.
func ItemBlocks(entries []models.MenuEntry) iter.Seq[ItemBlock] {
	return func(yield func(ItemBlock) bool) {
		for _, entry := range entries {
			if !yield(NewItemBlock(entry)) {
				return
			}
		}
	}
}

// TotalLine renders the item count shown under the listing.
func TotalLine(count int) string {
	return fmt.Sprintf("Total Items: %d", count)
}
