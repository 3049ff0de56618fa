package gui

import (
	"image"

	"fyne.io/fyne/v2"

	"xray-labeler/store"
)

type MainInterface struct {
	window        fyne.Window
	layoutManager *LayoutManager

	// Callbacks
	onPrevious     func()
	onNext         func()
	onSave         func()
	onRegionSelect func(store.Annotation)
}

func NewMainInterface(window fyne.Window,
	onPrevious, onNext, onSave func(),
	onRegionSelect func(store.Annotation)) *MainInterface {

	gui := &MainInterface{
		window:         window,
		onPrevious:     onPrevious,
		onNext:         onNext,
		onSave:         onSave,
		onRegionSelect: onRegionSelect,
	}

	gui.layoutManager = NewLayoutManager(
		onPrevious,
		onNext,
		onSave,
		onRegionSelect,
	)

	return gui
}

func (gui *MainInterface) GetMainContainer() *fyne.Container {
	return gui.layoutManager.GetMainContainer()
}

func (gui *MainInterface) ShowImage(img image.Image, region *store.Annotation) {
	gui.layoutManager.ShowImage(img, region)
}

func (gui *MainInterface) ShowLoadError(message string) {
	gui.layoutManager.ShowError(message)
}

func (gui *MainInterface) SetFile(name string, index, total int) {
	gui.layoutManager.SetFile(name, index, total)
}

func (gui *MainInterface) UpdateStatus(status string) {
	gui.layoutManager.UpdateStatus(status)
}
