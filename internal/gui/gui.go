//go:build !nogui

package gui

import (
	"randompick/internal/config"
	"randompick/internal/log"
	"randompick/internal/picker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// AppID identifies the application to fyne's preferences storage.
const AppID = "io.github.randompick"

// StartGUI opens the main window and blocks until it is closed. A non-empty
// followPath keeps the input in sync with that file; a file that cannot be
// followed is reported in the window.
func StartGUI(engine *picker.Engine, cfg *config.Config, followPath string) error {
	f := NewFactory(cfg, engine)
	gui, err := f.Create()
	if err != nil {
		return err
	}
	startFollowing(gui, followPath)
	log.LogWithFields(log.F("locale", engine.Locale().Tag.String())).Debug("starting gui")
	gui.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// startFollowing follows path when set. A file that cannot be followed is
// reported in the window and the picker stays usable with manual input.
func startFollowing(gui Interface, path string) {
	if path == "" {
		return
	}
	if err := gui.Follow(path); err != nil {
		gui.ShowError("cannot follow items file", err)
	}
}

func newFyneApp() fyne.App {
	return app.NewWithID(AppID)
}
