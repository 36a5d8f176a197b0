package views

import (
	"strings"

	"randompick/internal/picker"
	"randompick/internal/tui/common"
)

func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder
	st := m.Styles()
	loc := m.Locale()
	snap := m.Snapshot()

	sb.WriteString(st.Title.Render(loc.Strings.Title) + "\n")
	sb.WriteString(st.Subtle.Render(loc.Strings.Description) + "\n")
	sb.WriteString(st.Privacy.Render(loc.Strings.Privacy) + "\n\n")

	sb.WriteString(st.Input.Render(m.InputView()) + "\n")
	sb.WriteString(st.Subtle.Render(loc.ItemCount(len(picker.ParseItems(snap.Input)))) + "\n")

	if panel := RenderResult(m); panel != "" {
		sb.WriteString("\n" + panel + "\n")
	}

	if status := m.StatusView(); status != "" {
		sb.WriteString("\n" + status + "\n")
	}

	sb.WriteString("\n" + m.HelpView() + "\n")
	sb.WriteString(st.Subtle.Render(loc.Strings.Footer))

	return st.App.Render(sb.String())
}

// RenderResult renders the result panel, or "" while there is nothing to show.
func RenderResult(m common.ModelReader) string {
	st := m.Styles()
	snap := m.Snapshot()
	if snap.Display == "" {
		return ""
	}

	panel := st.Panel
	if w := m.Width(); w > 8 {
		panel = panel.Width(w - 8)
	}

	switch snap.State {
	case picker.EmptyInputError:
		return panel.Render(st.Error.Render(snap.Display))
	case picker.Animating:
		return panel.Render(st.Heading.Render(m.Locale().Strings.SelectedHeading) + "\n" + st.Candidate.Render(snap.Display))
	default:
		return panel.Render(st.Heading.Render(m.Locale().Strings.SelectedHeading) + "\n" + st.Result.Render(snap.Display))
	}
}
