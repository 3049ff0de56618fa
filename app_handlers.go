package main

import (
	"fmt"

	"fyne.io/fyne/v2/dialog"

	"xray-labeler/store"
)

func (app *LabelerApp) handleNext() {
	if app.session.Next() {
		app.showCurrentImage()
	}
}

func (app *LabelerApp) handlePrevious() {
	if app.session.Previous() {
		app.showCurrentImage()
	}
}

// handleRegionSelect overwrites the annotation for the file on screen with
// the freshly committed selection.
func (app *LabelerApp) handleRegionSelect(region store.Annotation) {
	name := app.session.CurrentName()
	app.store.Put(name, region)
	app.logger.Debug("Annotations", "region selected", map[string]interface{}{
		"file":   name,
		"x":      region.X,
		"y":      region.Y,
		"width":  region.Width,
		"height": region.Height,
	})
}

// handleSave merges both annotation layers and rewrites the output file.
// The current index and view are unchanged.
func (app *LabelerApp) handleSave() {
	if err := app.store.Save(); err != nil {
		app.showError("Save Error", err)
		return
	}
	message := fmt.Sprintf("Annotations saved to %s", app.store.Path())
	app.logger.Info("Annotations", message, nil)
	app.mainGUI.UpdateStatus(message)
}

// showCurrentImage decodes and displays the active file. Decode failures are
// shown inline in place of the image; navigation stays live.
func (app *LabelerApp) showCurrentImage() {
	path := app.session.Current()
	name := app.session.CurrentName()
	app.mainGUI.SetFile(name, app.session.Index(), app.session.Count())

	data, err := app.pipeline.LoadFile(path)
	if err != nil {
		app.logger.Error("Pipeline", err, map[string]interface{}{"file": path})
		app.mainGUI.ShowLoadError(fmt.Sprintf("Error reading file: %v", err))
		return
	}

	// An annotation loaded from a prior run is promoted into the session
	// layer the first time its image is displayed.
	var region *store.Annotation
	if ann, ok := app.store.Get(name); ok {
		app.store.Put(name, ann)
		region = &ann
	}

	app.mainGUI.ShowImage(data.Image, region)
	app.mainGUI.UpdateStatus("Ready")
}

func (app *LabelerApp) showError(title string, err error) {
	app.logger.Error("UI", err, nil)
	dialog.ShowError(err, app.window)
}
