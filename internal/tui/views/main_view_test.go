package views

import (
	"testing"

	"randompick/internal/locale"
	"randompick/internal/picker"
	"randompick/internal/tui/styles"
	"randompick/pkg/testutils"

	"github.com/stretchr/testify/assert"
)

// Mock model for testing
type mockModel struct {
	snap   picker.Snapshot
	loc    *locale.Locale
	input  string
	status string
	help   string
	width  int
}

func (m *mockModel) Snapshot() picker.Snapshot { return m.snap }
func (m *mockModel) Locale() *locale.Locale    { return m.loc }
func (m *mockModel) Styles() styles.Styles     { return styles.Default() }
func (m *mockModel) InputView() string         { return m.input }
func (m *mockModel) StatusView() string        { return m.status }
func (m *mockModel) HelpView() string          { return m.help }
func (m *mockModel) Width() int                { return m.width }

func TestRenderMainView(t *testing.T) {
	en := locale.MustLoad("en")
	es := locale.MustLoad("es")

	tests := []struct {
		name     string
		model    *mockModel
		contains []string // Strings that should be present in the output
		excludes []string // Strings that should not be present in the output
	}{
		{
			name: "idle",
			model: &mockModel{
				snap:  picker.Snapshot{State: picker.Idle},
				loc:   en,
				input: "<textarea>",
				help:  "ctrl+p pick",
			},
			contains: []string{
				en.Strings.Title,
				en.Strings.Privacy,
				"<textarea>",
				"ctrl+p pick",
				en.ItemCount(0),
			},
			excludes: []string{
				en.Strings.SelectedHeading,
			},
		},
		{
			name: "animating",
			model: &mockModel{
				snap:   picker.Snapshot{State: picker.Animating, Input: "Alice\nBob", Display: "Bob", Tick: 3, Ticks: 20, Items: 2},
				loc:    en,
				status: en.Strings.PickingButton,
				width:  60,
			},
			contains: []string{
				en.Strings.SelectedHeading,
				"Bob",
				en.Strings.PickingButton,
				en.ItemCount(2),
			},
		},
		{
			name: "resolved",
			model: &mockModel{
				snap: picker.Snapshot{State: picker.Resolved, Input: "Alice", Display: "Alice", Ticks: 20, Items: 1},
				loc:  en,
			},
			contains: []string{
				en.Strings.SelectedHeading,
				"Alice",
			},
		},
		{
			name: "empty input error",
			model: &mockModel{
				snap: picker.Snapshot{State: picker.EmptyInputError, Display: es.Strings.EmptyInput},
				loc:  es,
			},
			contains: []string{
				es.Strings.EmptyInput,
				es.Strings.Title,
			},
			excludes: []string{
				es.Strings.SelectedHeading,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutils.StripANSI(RenderMainView(tt.model))

			for _, s := range tt.contains {
				assert.Contains(t, output, s, "Output should contain %q", s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s, "Output should not contain %q", s)
			}
		})
	}
}

func TestRenderResultHiddenWhenIdle(t *testing.T) {
	m := &mockModel{loc: locale.MustLoad("en"), snap: picker.Snapshot{State: picker.Idle}}
	assert.Empty(t, RenderResult(m))
}
