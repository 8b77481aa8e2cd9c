package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NavBar holds the two always visible navigation buttons.
type NavBar struct {
	container  *fyne.Container
	homeButton *widget.Button
	addButton  *widget.Button

	homeHandler func()
	addHandler  func()
}

// NewNavBar creates a new navigation bar component
func NewNavBar() *NavBar {
	nb := &NavBar{}

	nb.homeButton = widget.NewButton("Home", func() {
		if nb.homeHandler != nil {
			nb.homeHandler()
		}
	})
	nb.addButton = widget.NewButton("Add Menu Item", func() {
		if nb.addHandler != nil {
			nb.addHandler()
		}
	})

	nb.container = container.NewHBox(nb.homeButton, nb.addButton)
	return nb
}

// GetContainer returns the navigation bar container
func (nb *NavBar) GetContainer() *fyne.Container {
	return nb.container
}

// SetHomeHandler sets the handler for the Home button
func (nb *NavBar) SetHomeHandler(handler func()) { nb.homeHandler = handler }

// SetAddHandler sets the handler for the Add Menu Item button
func (nb *NavBar) SetAddHandler(handler func()) { nb.addHandler = handler }

// SetActive highlights the button of the screen being shown.
func (nb *NavBar) SetActive(creating bool) {
	if creating {
		nb.homeButton.Importance = widget.MediumImportance
		nb.addButton.Importance = widget.HighImportance
	} else {
		nb.homeButton.Importance = widget.HighImportance
		nb.addButton.Importance = widget.MediumImportance
	}
	nb.homeButton.Refresh()
	nb.addButton.Refresh()
}

// Buttons returns the Home and Add Menu Item buttons
func (nb *NavBar) Buttons() (home, add *widget.Button) {
	return nb.homeButton, nb.addButton
}
