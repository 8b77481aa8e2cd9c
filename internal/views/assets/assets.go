package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed logo.svg
var logoSVG []byte

// Logo is the default decorative logo shown above the menu.
var Logo = fyne.NewStaticResource("logo.svg", logoSVG)
