package components

import (
	"chefs-menu/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ListingView shows every menu entry followed by the item count.
type ListingView struct {
	container   *fyne.Container
	logo        *LogoDisplay
	itemsBox    *fyne.Container
	placeholder *widget.Label
	totalLabel  *widget.Label
	blocks      []ItemBlock
}

// NewListingView creates a new menu listing component
func NewListingView(logo fyne.Resource) *ListingView {
	lv := &ListingView{
		logo:        NewLogoDisplay(logo),
		itemsBox:    container.NewVBox(),
		placeholder: widget.NewLabel(EmptyMenuText),
		totalLabel:  widget.NewLabel(TotalLine(0)),
	}

	heading := widget.NewLabelWithStyle(MenuHeading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	lv.container = container.NewVBox(
		lv.logo.GetContainer(),
		heading,
		lv.placeholder,
		lv.itemsBox,
		lv.totalLabel,
	)
	return lv
}

// GetContainer returns the listing container
func (lv *ListingView) GetContainer() *fyne.Container {
	return lv.container
}

// Render replaces the shown items with entries.
func (lv *ListingView) Render(entries []models.MenuEntry) {
	lv.itemsBox.RemoveAll()
	lv.blocks = lv.blocks[:0]

	for block := range ItemBlocks(entries) {
		lv.blocks = append(lv.blocks, block)
		lv.itemsBox.Add(newItemCard(block))
	}

	if len(entries) == 0 {
		lv.placeholder.Show()
	} else {
		lv.placeholder.Hide()
	}
	lv.totalLabel.SetText(TotalLine(len(entries)))
	lv.itemsBox.Refresh()
}

// ItemCount returns the number of item blocks on screen
func (lv *ListingView) ItemCount() int {
	return len(lv.itemsBox.Objects)
}

// Blocks returns a copy of the rendered item blocks
func (lv *ListingView) Blocks() []ItemBlock {
	out := make([]ItemBlock, len(lv.blocks))
	copy(out, lv.blocks)
	return out
}

// PlaceholderVisible reports whether the empty menu text is shown
func (lv *ListingView) PlaceholderVisible() bool {
	return lv.placeholder.Visible()
}

// TotalText returns the item count line
func (lv *ListingView) TotalText() string {
	return lv.totalLabel.Text
}

func newItemCard(block ItemBlock) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(block.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(block.Description),
		widget.NewLabel(block.Course),
		widget.NewLabel(block.Price),
		widget.NewSeparator(),
	)
}
