package models

// DraftEntry is the not yet submitted content of the creation form. Price
// is kept as the raw text the user typed.
type DraftEntry struct {
	Name        string
	Description string
	Course      string
	PriceText   string
}

// IsEmpty reports whether every field is blank.
func (d DraftEntry) IsEmpty() bool {
	return d == DraftEntry{}
}

// Entry converts the draft into a menu entry, coercing the price text.
func (d DraftEntry) Entry() MenuEntry {
	return MenuEntry{
		Name:        d.Name,
		Description: d.Description,
		Course:      Course(d.Course),
		Price:       ParsePrice(d.PriceText),
	}
}
