//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"randompick/internal/config"
	"randompick/internal/picker"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(engine *picker.Engine, cfg *config.Config, followPath string) error {
	return fmt.Errorf("GUI not available in this build; use the tui or pick commands")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
