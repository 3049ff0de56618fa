package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"xray-labeler/store"
)

// LayoutManager coordinates the main application layout
type LayoutManager struct {
	mainContainer *fyne.Container
	imageDisplay  *ImageDisplay
	navigation    *NavigationPanel
	statusBar     *StatusBar
}

func NewLayoutManager(
	onPrevious, onNext, onSave func(),
	onRegionSelect func(store.Annotation)) *LayoutManager {

	imageDisplay := NewImageDisplay(onRegionSelect)
	navigation := NewNavigationPanel(onPrevious, onNext, onSave)
	statusBar := NewStatusBar()

	// Image fills the center, controls and status stacked at the bottom.
	bottom := container.NewVBox(
		navigation.GetContainer(),
		statusBar.GetContainer(),
	)
	mainContainer := container.NewBorder(
		nil,    // top
		bottom, // bottom
		nil,    // left
		nil,    // right
		imageDisplay.GetContainer(),
	)

	return &LayoutManager{
		mainContainer: mainContainer,
		imageDisplay:  imageDisplay,
		navigation:    navigation,
		statusBar:     statusBar,
	}
}

func (lm *LayoutManager) GetMainContainer() *fyne.Container {
	return lm.mainContainer
}

// Image display methods
func (lm *LayoutManager) ShowImage(img image.Image, region *store.Annotation) {
	lm.imageDisplay.ShowImage(img, region)
}

func (lm *LayoutManager) ShowError(message string) {
	lm.imageDisplay.ShowError(message)
}

// Status methods
func (lm *LayoutManager) SetFile(name string, index, total int) {
	lm.statusBar.SetFile(name, index, total)
}

func (lm *LayoutManager) UpdateStatus(status string) {
	lm.statusBar.SetStatus(status)
}
