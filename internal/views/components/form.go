package components

import (
	"chefs-menu/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	FormHeading       = "Add Menu Item"
	CoursePlaceholder = "Select Course"
	SubmitLabel       = "Add Menu Item"
)

// CreateForm collects a new menu item. Every edit is forwarded to the
// matching handler as it happens; the form keeps no state of its own.
type CreateForm struct {
	container    *fyne.Container
	nameEntry    *widget.Entry
	descEntry    *widget.Entry
	courseSelect *widget.Select
	priceEntry   *widget.Entry
	submitButton *widget.Button

	nameHandler        func(string)
	descriptionHandler func(string)
	courseHandler      func(string)
	priceHandler       func(string)
	submitHandler      func()

	loading bool
}

// NewCreateForm creates a new menu item form component
func NewCreateForm() *CreateForm {
	form := &CreateForm{}
	form.createComponents()
	form.buildLayout()
	return form
}

func (cf *CreateForm) createComponents() {
	cf.nameEntry = widget.NewEntry()
	cf.nameEntry.SetPlaceHolder("Dish Name")
	cf.nameEntry.OnChanged = func(s string) { cf.forward(cf.nameHandler, s) }

	cf.descEntry = widget.NewEntry()
	cf.descEntry.SetPlaceHolder("Description")
	cf.descEntry.OnChanged = func(s string) { cf.forward(cf.descriptionHandler, s) }

	// The placeholder is shown while nothing is chosen but is not an option.
	cf.courseSelect = widget.NewSelect(models.CourseNames(), func(s string) { cf.forward(cf.courseHandler, s) })
	cf.courseSelect.PlaceHolder = CoursePlaceholder

	cf.priceEntry = widget.NewEntry()
	cf.priceEntry.SetPlaceHolder("Price")
	cf.priceEntry.OnChanged = func(s string) { cf.forward(cf.priceHandler, s) }

	cf.submitButton = widget.NewButton(SubmitLabel, func() {
		if cf.submitHandler != nil {
			cf.submitHandler()
		}
	})
	cf.submitButton.Importance = widget.HighImportance
}

func (cf *CreateForm) buildLayout() {
	fields := widget.NewForm(
		widget.NewFormItem("Dish Name", cf.nameEntry),
		widget.NewFormItem("Description", cf.descEntry),
		widget.NewFormItem("Course", cf.courseSelect),
		widget.NewFormItem("Price", cf.priceEntry),
	)

	cf.container = container.NewVBox(
		widget.NewLabelWithStyle(FormHeading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fields,
		cf.submitButton,
	)
}

// GetContainer returns the form container
func (cf *CreateForm) GetContainer() *fyne.Container {
	return cf.container
}

// SetNameHandler sets the handler for dish name edits
func (cf *CreateForm) SetNameHandler(handler func(string)) { cf.nameHandler = handler }

// SetDescriptionHandler sets the handler for description edits
func (cf *CreateForm) SetDescriptionHandler(handler func(string)) { cf.descriptionHandler = handler }

// SetCourseHandler sets the handler for course selection
func (cf *CreateForm) SetCourseHandler(handler func(string)) { cf.courseHandler = handler }

// SetPriceHandler sets the handler for price edits
func (cf *CreateForm) SetPriceHandler(handler func(string)) { cf.priceHandler = handler }

// SetSubmitHandler sets the handler for the submit button
func (cf *CreateForm) SetSubmitHandler(handler func()) { cf.submitHandler = handler }

// Load shows draft in the controls without echoing the values back to the
// edit handlers.
func (cf *CreateForm) Load(draft models.DraftEntry) {
	cf.loading = true
	defer func() { cf.loading = false }()

	cf.nameEntry.SetText(draft.Name)
	cf.descEntry.SetText(draft.Description)
	cf.priceEntry.SetText(draft.PriceText)
	if draft.Course == "" {
		cf.courseSelect.ClearSelected()
	} else {
		cf.courseSelect.SetSelected(draft.Course)
	}
}

// Values reads back what the controls currently show.
func (cf *CreateForm) Values() models.DraftEntry {
	return models.DraftEntry{
		Name:        cf.nameEntry.Text,
		Description: cf.descEntry.Text,
		Course:      cf.courseSelect.Selected,
		PriceText:   cf.priceEntry.Text,
	}
}

// Controls exposes the widgets for keyboard focus and tests.
func (cf *CreateForm) Controls() (name, description *widget.Entry, course *widget.Select, price *widget.Entry, submit *widget.Button) {
	return cf.nameEntry, cf.descEntry, cf.courseSelect, cf.priceEntry, cf.submitButton
}

func (cf *CreateForm) forward(handler func(string), value string) {
	if cf.loading || handler == nil {
		return
	}
	handler(value)
}
