package styles

import (
	"randompick/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of the terminal front end.
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Privacy   lipgloss.Style
	Input     lipgloss.Style
	Panel     lipgloss.Style
	Heading   lipgloss.Style
	Candidate lipgloss.Style
	Result    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// Default returns the styles of the default theme.
func Default() Styles {
	return FromConfig(config.New())
}

// FromConfig builds the styles from the configured theme colors.
func FromConfig(cfg *config.Config) Styles {
	primary := lipgloss.Color(cfg.Theme.Primary)
	accent := lipgloss.Color(cfg.Theme.Accent)
	muted := lipgloss.Color(cfg.Theme.Muted)
	errColor := lipgloss.Color(cfg.Theme.Error)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtle: lipgloss.NewStyle().
			Foreground(muted),
		Privacy: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2),
		Heading: lipgloss.NewStyle().
			Foreground(muted),
		Candidate: lipgloss.NewStyle().
			Foreground(accent),
		Result: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(muted),
	}
}
