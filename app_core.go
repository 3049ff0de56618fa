package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"xray-labeler/gui"
	"xray-labeler/internal/logger"
	"xray-labeler/internal/session"
	"xray-labeler/pipeline"
	"xray-labeler/scan"
	"xray-labeler/store"
)

const (
	AppName      = "X-Ray Labeler"
	AppID        = "com.imagelabeling.xraylabeler"
	AppVersion   = "1.0.0"
	WindowWidth  = 1000
	WindowHeight = 800
)

type LabelerApp struct {
	fyneApp  fyne.App
	window   fyne.Window
	mainGUI  *gui.MainInterface
	pipeline *pipeline.ImagePipeline
	store    *store.Store
	session  *session.Session
	logger   logger.Logger
}

// NewLabelerApp loads prior annotations, enumerates the image files and
// builds the window. An input directory with no labelable files is a fatal
// precondition reported as an error.
func NewLabelerApp(inputDir, outputFile string) (*LabelerApp, error) {
	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	annotations := store.New(outputFile)
	if err := annotations.Load(); err != nil {
		return nil, fmt.Errorf("failed to load existing annotations: %w", err)
	}

	files, format, err := scan.FindImageFiles(inputDir)
	if err != nil {
		return nil, err
	}
	log.Info("Scanner", fmt.Sprintf("found %d %s files", len(files), format), map[string]interface{}{
		"input_dir": inputDir,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	labeler := &LabelerApp{
		fyneApp:  fyneApp,
		window:   window,
		pipeline: pipeline.NewImagePipeline(log),
		store:    annotations,
		session:  session.New(files),
		logger:   log,
	}

	labeler.mainGUI = gui.NewMainInterface(window,
		labeler.handlePrevious, labeler.handleNext, labeler.handleSave,
		labeler.handleRegionSelect)

	return labeler, nil
}

// Run shows the first image and enters the event loop. Closing the window
// ends the session without forcing a save.
func (app *LabelerApp) Run() {
	app.setupMenus()
	app.window.SetContent(app.mainGUI.GetMainContainer())
	app.showCurrentImage()
	app.window.ShowAndRun()
}
