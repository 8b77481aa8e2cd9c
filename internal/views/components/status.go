package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar reports the outcome of the last user action.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")

	return &StatusBar{
		container:   container.NewBorder(nil, nil, statusLabel, nil),
		statusLabel: statusLabel,
	}
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus updates the status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// Status returns the current status message
func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}
