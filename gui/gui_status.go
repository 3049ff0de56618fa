package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	fileLabel   *widget.Label
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusBar := &StatusBar{}

	statusBar.fileLabel = widget.NewLabel("")
	statusBar.statusLabel = widget.NewLabel("Ready")

	statusBar.container = container.NewBorder(
		nil, nil,
		statusBar.fileLabel,
		statusBar.statusLabel,
	)

	return statusBar
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetFile(name string, index, total int) {
	sb.fileLabel.SetText(fmt.Sprintf("File: %s (%d/%d)", name, index+1, total))
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}
