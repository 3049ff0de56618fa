package main

import (
	"fyne.io/fyne/v2"
)

func (app *LabelerApp) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save Annotations", func() {
			app.handleSave()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			app.fyneApp.Quit()
		}),
	)

	navigateMenu := fyne.NewMenu("Navigate",
		fyne.NewMenuItem("Previous Image", func() {
			app.handlePrevious()
		}),
		fyne.NewMenuItem("Next Image", func() {
			app.handleNext()
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, navigateMenu)
	app.window.SetMainMenu(mainMenu)
}
