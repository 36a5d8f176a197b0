// Package tui is the terminal front end. All state lives in the picker
// engine; the model only mirrors its snapshots and forwards key presses.
package tui

import (
	"strings"

	"randompick/internal/errors"
	"randompick/internal/locale"
	"randompick/internal/log"
	"randompick/internal/picker"
	"randompick/internal/tui/common"
	"randompick/internal/tui/components"
	"randompick/internal/tui/messages"
	"randompick/internal/tui/styles"
	"randompick/internal/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

var _ common.ModelReader = (*Model)(nil)

// maxEditableLines is the textarea's fixed line capacity. Longer inputs are
// shown cut short and are not edited here.
const maxEditableLines = 10000

type Model struct {
	engine *picker.Engine
	loc    *locale.Locale
	styles styles.Styles

	keys   keyMap
	help   help.Model
	input  textarea.Model
	status *components.StatusBar

	snap        picker.Snapshot
	truncated   bool
	updates     chan picker.Snapshot
	unsubscribe func()

	width int
}

func New(engine *picker.Engine, st styles.Styles) *Model {
	loc := engine.Locale()

	ta := textarea.New()
	ta.Placeholder = loc.Strings.Placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.MaxHeight = 0
	ta.SetHeight(8)
	// ctrl+p belongs to the pick binding.
	ta.KeyMap.LinePrevious = key.NewBinding(key.WithKeys("up"))
	ta.Focus()

	h := help.New()
	h.Styles.ShortKey = st.Help.Bold(true)
	h.Styles.ShortDesc = st.Help
	h.Styles.ShortSeparator = st.Help

	m := &Model{
		engine:  engine,
		loc:     loc,
		styles:  st,
		keys:    newKeyMap(loc.Strings.PickButton, loc.Strings.LoadSampleButton, loc.Strings.ResetButton, loc.Strings.Quit),
		help:    h,
		input:   ta,
		status:  components.NewStatusBar(st.Help),
		updates: make(chan picker.Snapshot, 16),
	}

	m.unsubscribe = engine.Subscribe(m.forward)
	m.snap = engine.Snapshot()
	m.setInputValue(m.snap.Input)
	m.keys.setBusy(m.snap.State == picker.Animating)
	if m.truncated {
		m.status.SetText(loc.Strings.TooLong)
	}
	return m
}

// forward runs on the engine's notification path. When the program falls
// behind, the oldest pending snapshot is dropped; every snapshot is a full
// state so only the latest matters.
func (m *Model) forward(s picker.Snapshot) {
	select {
	case m.updates <- s:
	default:
		select {
		case <-m.updates:
		default:
		}
		m.updates <- s
	}
}

func waitForSnapshot(ch <-chan picker.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return messages.SnapshotMsg{Snapshot: s}
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForSnapshot(m.updates))
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if msg.Width > 8 {
			m.input.SetWidth(msg.Width - 8)
		}
		return m, nil

	case messages.SnapshotMsg:
		return m, tea.Batch(m.applySnapshot(msg.Snapshot), waitForSnapshot(m.updates))

	case messages.InputFileMsg:
		m.setInputValue(msg.Text)
		m.engine.SetInput(msg.Text)
		return m, m.applySnapshot(m.engine.Snapshot())

	case messages.ErrorMsg:
		log.LogWithError(msg.Err).Error("tui error")
		m.status.SetText(msg.Err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmds []tea.Cmd
	if cmd := m.status.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pick):
		if err := m.engine.Pick(); err != nil && !errors.Is(err, picker.ErrAnimating) {
			return m, func() tea.Msg { return messages.ErrorMsg{Err: err} }
		}
		return m, m.applySnapshot(m.engine.Snapshot())

	case key.Matches(msg, m.keys.Sample):
		m.engine.LoadSample()
		return m, m.syncInput()

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		return m, m.syncInput()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		if m.truncated {
			// The textarea holds only part of the input; feeding it back
			// would drop the rest.
			m.input.SetValue(before)
			return m, cmd
		}
		m.engine.SetInput(after)
		m.snap = m.engine.Snapshot()
	}
	return m, cmd
}

// syncInput copies an input the engine replaced into the textarea.
func (m *Model) syncInput() tea.Cmd {
	snap := m.engine.Snapshot()
	m.setInputValue(snap.Input)
	return m.applySnapshot(snap)
}

func (m *Model) setInputValue(text string) {
	m.input.SetValue(text)
	m.truncated = strings.Count(text, "\n") >= maxEditableLines
}

// applySnapshot mirrors s. The textarea is left alone: input edits flow from
// it to the engine, never back, so queued snapshots cannot undo keystrokes.
func (m *Model) applySnapshot(s picker.Snapshot) tea.Cmd {
	m.snap = s
	busy := s.State == picker.Animating
	m.keys.setBusy(busy)
	switch {
	case busy:
		m.status.SetText(m.loc.Strings.PickingButton)
	case m.truncated:
		m.status.SetText(m.loc.Strings.TooLong)
	default:
		m.status.SetText("")
	}
	return m.status.SetLoading(busy)
}

// Close detaches the model from the engine and stops any running round.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.engine.Close()
}

// Getters

func (m *Model) Snapshot() picker.Snapshot {
	return m.snap
}

func (m *Model) Locale() *locale.Locale {
	return m.loc
}

func (m *Model) Styles() styles.Styles {
	return m.styles
}

func (m *Model) InputView() string {
	return m.input.View()
}

func (m *Model) StatusView() string {
	return m.status.View()
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

func (m *Model) Width() int {
	return m.width
}

// InputValue returns the textarea contents.
func (m *Model) InputValue() string {
	return m.input.Value()
}

// KeysEnabled reports whether the pick, sample and reset bindings are active.
func (m *Model) KeysEnabled() bool {
	return m.keys.Pick.Enabled() && m.keys.Sample.Enabled() && m.keys.Reset.Enabled()
}
