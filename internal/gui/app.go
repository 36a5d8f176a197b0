//go:build !nogui

package gui

import (
	"image/color"
	"sync/atomic"

	"randompick/internal/config"
	"randompick/internal/locale"
	"randompick/internal/log"
	"randompick/internal/picker"
	"randompick/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	engine     *picker.Engine
	loc        *locale.Locale

	input         *widget.Entry
	itemCount     *widget.Label
	resultHeading *widget.Label
	resultText    *canvas.Text
	resultCard    *fyne.Container
	pickButton    *widget.Button
	sampleButton  *widget.Button
	resetButton   *widget.Button

	// syncing is set while the entry is being updated from the engine so the
	// resulting OnChanged is not fed back.
	syncing     atomic.Bool
	unsubscribe func()
	follower    *watch.Follower
}

// NewApp builds the main window on fyneApp around engine.
func NewApp(fyneApp fyne.App, engine *picker.Engine, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.New()
	}
	a := &App{
		fyneApp: fyneApp,
		engine:  engine,
		loc:     engine.Locale(),
	}

	applyTheme(fyneApp, cfg.Theme)

	a.mainWindow = fyneApp.NewWindow(a.loc.Strings.Title)
	a.mainWindow.SetContent(a.buildContent())
	a.mainWindow.Resize(fyne.NewSize(520, 680))
	a.mainWindow.SetOnClosed(a.Close)

	a.unsubscribe = engine.Subscribe(a.render)
	a.render(engine.Snapshot())
	return a
}

func (a *App) buildContent() fyne.CanvasObject {
	s := a.loc.Strings

	title := widget.NewLabelWithStyle(s.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	description := widget.NewLabelWithStyle(s.Description, fyne.TextAlignCenter, fyne.TextStyle{})
	description.Wrapping = fyne.TextWrapWord
	privacy := widget.NewLabelWithStyle(s.Privacy, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	privacy.Wrapping = fyne.TextWrapWord

	a.input = widget.NewMultiLineEntry()
	a.input.SetPlaceHolder(s.Placeholder)
	a.input.SetMinRowsVisible(8)
	a.input.OnChanged = func(text string) {
		if a.syncing.Load() {
			return
		}
		a.engine.SetInput(text)
	}

	a.itemCount = widget.NewLabel(a.loc.ItemCount(0))

	a.resultHeading = widget.NewLabelWithStyle(s.SelectedHeading, fyne.TextAlignCenter, fyne.TextStyle{})
	a.resultText = canvas.NewText("", a.themeColor(theme.ColorNamePrimary))
	a.resultText.TextSize = 28
	a.resultText.TextStyle = fyne.TextStyle{Bold: true}
	a.resultText.Alignment = fyne.TextAlignCenter
	a.resultCard = container.NewPadded(container.NewVBox(a.resultHeading, a.resultText))
	a.resultCard.Hide()

	a.pickButton = widget.NewButton(s.PickButton, a.pick)
	a.pickButton.Importance = widget.HighImportance
	a.sampleButton = widget.NewButton(s.LoadSampleButton, a.engine.LoadSample)
	a.resetButton = widget.NewButton(s.ResetButton, a.engine.Reset)

	footer := widget.NewLabelWithStyle(s.Footer, fyne.TextAlignCenter, fyne.TextStyle{})

	header := container.NewVBox(title, description, privacy, widget.NewSeparator())
	body := container.NewVBox(
		a.input,
		a.itemCount,
		a.resultCard,
		a.pickButton,
		container.NewGridWithColumns(2, a.sampleButton, a.resetButton),
	)
	return container.NewBorder(header, footer, nil, nil, container.NewVScroll(body))
}

func (a *App) pick() {
	if err := a.engine.Pick(); err != nil {
		log.LogWithError(err).Debug("pick ignored")
	}
}

// render mirrors a snapshot onto the widgets. It runs on whichever goroutine
// changed the engine.
func (a *App) render(snap picker.Snapshot) {
	s := a.loc.Strings

	if a.input.Text != snap.Input {
		a.syncing.Store(true)
		a.input.SetText(snap.Input)
		a.syncing.Store(false)
	}
	a.itemCount.SetText(a.loc.ItemCount(len(picker.ParseItems(snap.Input))))

	switch {
	case snap.Display == "":
		a.resultCard.Hide()
	case snap.State == picker.EmptyInputError:
		a.resultHeading.Hide()
		a.setResult(snap.Display, a.themeColor(theme.ColorNameError))
		a.resultCard.Show()
	default:
		a.resultHeading.Show()
		a.setResult(snap.Display, a.themeColor(theme.ColorNamePrimary))
		a.resultCard.Show()
	}

	if snap.State == picker.Animating {
		a.pickButton.SetText(s.PickingButton)
		a.pickButton.Disable()
		a.sampleButton.Disable()
		a.resetButton.Disable()
	} else {
		a.pickButton.SetText(s.PickButton)
		a.pickButton.Enable()
		a.sampleButton.Enable()
		a.resetButton.Enable()
	}
}

func (a *App) themeColor(name fyne.ThemeColorName) color.Color {
	settings := a.fyneApp.Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}

func (a *App) setResult(text string, c color.Color) {
	a.resultText.Text = text
	a.resultText.Color = c
	a.resultText.Refresh()
}

// Follow keeps the entry in sync with the file at path.
func (a *App) Follow(path string) error {
	f, err := watch.NewFollower(path, a.engine.SetInput)
	if err != nil {
		return err
	}
	if err := f.Start(); err != nil {
		f.Stop()
		return err
	}
	a.follower = f
	return nil
}

// Window returns the main window
func (a *App) Window() fyne.Window {
	return a.mainWindow
}

// Run shows the window and blocks until the app quits.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// ShowError shows an error dialog
func (a *App) ShowError(title string, err error) {
	log.LogWithError(err).Error(title)
	dialog.ShowError(err, a.mainWindow)
}

// Close detaches the window from the engine, stops following and stops any
// running round. It is safe to call more than once.
func (a *App) Close() {
	if a.follower != nil {
		a.follower.Stop()
		a.follower = nil
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.engine.Close()
}
