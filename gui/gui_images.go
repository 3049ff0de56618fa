package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"xray-labeler/store"
)

const (
	ImageDisplayWidth  = 640
	ImageDisplayHeight = 480
)

// ImageDisplay holds the image area: the selection canvas stacked with an
// inline error label shown when a file cannot be decoded.
type ImageDisplay struct {
	container *fyne.Container
	selector  *RegionSelector
	errorText *widget.Label
}

func NewImageDisplay(onSelect func(store.Annotation)) *ImageDisplay {
	display := &ImageDisplay{}

	display.selector = NewRegionSelector(onSelect)

	display.errorText = widget.NewLabel("")
	display.errorText.Alignment = fyne.TextAlignCenter
	display.errorText.Wrapping = fyne.TextWrapWord
	display.errorText.Hide()

	display.container = container.NewStack(
		display.selector,
		container.NewCenter(display.errorText),
	)

	return display
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}

// ShowImage displays a decoded image with an optional stored annotation
// outline drawn before any new interaction.
func (id *ImageDisplay) ShowImage(img image.Image, region *store.Annotation) {
	id.errorText.Hide()
	id.selector.SetImage(img)
	id.selector.SetRegion(region)
}

// ShowError replaces the image with an inline error message. Navigation is
// unaffected; drawing is unavailable until a loadable image is shown.
func (id *ImageDisplay) ShowError(message string) {
	id.selector.SetImage(nil)
	id.selector.SetRegion(nil)
	id.errorText.SetText(message)
	id.errorText.Show()
}
