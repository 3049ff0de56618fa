package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NavigationPanel holds the Previous/Next/Save buttons.
type NavigationPanel struct {
	container  *fyne.Container
	prevButton *widget.Button
	nextButton *widget.Button
	saveButton *widget.Button
}

func NewNavigationPanel(onPrevious, onNext, onSave func()) *NavigationPanel {
	panel := &NavigationPanel{}

	panel.prevButton = widget.NewButton("Previous", onPrevious)
	panel.nextButton = widget.NewButton("Next", onNext)
	panel.saveButton = widget.NewButton("Save", onSave)
	panel.saveButton.Importance = widget.HighImportance

	panel.container = container.NewPadded(container.NewHBox(
		panel.prevButton,
		panel.nextButton,
		widget.NewSeparator(),
		panel.saveButton,
	))

	return panel
}

func (np *NavigationPanel) GetContainer() *fyne.Container {
	return np.container
}
