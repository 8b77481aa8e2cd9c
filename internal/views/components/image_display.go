package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const LogoSize = 100

// LogoDisplay shows the decorative logo at the top of the menu listing.
type LogoDisplay struct {
	container *fyne.Container
	image     *canvas.Image
}

// NewLogoDisplay creates a logo display for resource
func NewLogoDisplay(resource fyne.Resource) *LogoDisplay {
	img := canvas.NewImageFromResource(resource)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))

	return &LogoDisplay{
		container: container.NewHBox(img),
		image:     img,
	}
}

// GetContainer returns the logo container
func (ld *LogoDisplay) GetContainer() *fyne.Container {
	return ld.container
}

// Resource returns the image resource being shown
func (ld *LogoDisplay) Resource() fyne.Resource {
	return ld.image.Resource
}

// LoadLogo reads an image file to use instead of the built-in logo.
func LoadLogo(path string) (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", path, err)
	}
	return res, nil
}
