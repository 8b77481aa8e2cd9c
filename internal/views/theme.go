package views

import (
	"image/color"

	"chefs-menu/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BrandTheme layers the restaurant colors over the default Fyne theme.
type BrandTheme struct {
	colors config.Colors
	base   fyne.Theme
}

// NewBrandTheme creates a theme using the configured brand colors
func NewBrandTheme(colors config.Colors) *BrandTheme {
	return &BrandTheme{colors: colors, base: theme.DefaultTheme()}
}

// Color returns the brand color for primary and focus names, the default otherwise
func (t *BrandTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.colors.Primary
	case theme.ColorNameFocus, theme.ColorNameSelection:
		return t.colors.Secondary
	}
	return t.base.Color(name, variant)
}

// Background is the page fill behind the menu content.
func (t *BrandTheme) Background() color.Color {
	return t.colors.Background
}

// Font returns the default theme font
func (t *BrandTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns the default theme icon
func (t *BrandTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns the default theme size
func (t *BrandTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
