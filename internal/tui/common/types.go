package common

import (
	"randompick/internal/locale"
	"randompick/internal/picker"
	"randompick/internal/tui/styles"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Snapshot() picker.Snapshot
	Locale() *locale.Locale
	Styles() styles.Styles
	InputView() string
	StatusView() string
	HelpView() string
	Width() int
}
