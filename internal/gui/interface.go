//go:build !nogui

package gui

import (
	"randompick/internal/config"
	"randompick/internal/picker"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	Follow(path string) error
	ShowError(title string, err error)
}

// Factory creates GUI instances
type Factory struct {
	config *config.Config
	engine *picker.Engine
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, engine *picker.Engine) *Factory {
	return &Factory{
		config: cfg,
		engine: engine,
	}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(newFyneApp(), f.engine, f.config), nil
}
