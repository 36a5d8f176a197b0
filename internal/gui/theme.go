//go:build !nogui

package gui

import (
	"image/color"
	"strconv"
	"strings"

	"randompick/internal/config"
	"randompick/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// pickerTheme is fyne's default theme recoloured from the config palette.
// The dark and light palettes also pin the variant.
type pickerTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant
	colors  map[fyne.ThemeColorName]color.Color
}

func newPickerTheme(t config.Theme) *pickerTheme {
	pt := &pickerTheme{
		base:   theme.DefaultTheme(),
		colors: make(map[fyne.ThemeColorName]color.Color),
	}
	switch t.Name {
	case "dark":
		v := theme.VariantDark
		pt.variant = &v
	case "light":
		v := theme.VariantLight
		pt.variant = &v
	}

	pt.set(t.Primary, theme.ColorNamePrimary)
	pt.set(t.Accent, theme.ColorNameFocus, theme.ColorNameHyperlink)
	pt.set(t.Muted, theme.ColorNamePlaceHolder, theme.ColorNameDisabled)
	pt.set(t.Error, theme.ColorNameError)
	return pt
}

func (t *pickerTheme) set(value string, names ...fyne.ThemeColorName) {
	if value == "" {
		return
	}
	c, ok := parseColor(value)
	if !ok {
		log.LogWithFields(log.F("color", value)).Warn("ignoring unrecognised theme color")
		return
	}
	for _, n := range names {
		t.colors[n] = c
	}
}

func (t *pickerTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	if c, ok := t.colors[n]; ok {
		return c
	}
	if t.variant != nil {
		v = *t.variant
	}
	return t.base.Color(n, v)
}

func (t *pickerTheme) Font(s fyne.TextStyle) fyne.Resource {
	return t.base.Font(s)
}

func (t *pickerTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(n)
}

func (t *pickerTheme) Size(n fyne.ThemeSizeName) float32 {
	return t.base.Size(n)
}

// parseColor accepts the forms the terminal styles accept: an ANSI 256
// palette index such as "213" or a hex color such as "#ff87d7".
func parseColor(value string) (color.Color, bool) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return nil, false
		}
		return c, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return nil, false
	}
	return ansi.IndexedColor(n), true
}

func applyTheme(a fyne.App, t config.Theme) {
	a.Settings().SetTheme(newPickerTheme(t))
}
