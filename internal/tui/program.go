package tui

import (
	"context"

	"randompick/internal/errors"
	"randompick/internal/log"
	"randompick/internal/tui/messages"
	"randompick/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configure Run.
type Options struct {
	// FollowPath, when set, keeps the input in sync with that file.
	FollowPath string
	// ProgramOptions are passed to bubbletea, after the defaults.
	ProgramOptions []tea.ProgramOption
}

// Run runs the terminal front end until the user quits or ctx is done.
func Run(ctx context.Context, m *Model, opts Options) error {
	defer m.Close()

	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(m, progOpts...)

	if opts.FollowPath != "" {
		f, err := watch.NewFollower(opts.FollowPath, func(text string) {
			p.Send(messages.InputFileMsg{Text: text})
		})
		if err != nil {
			return err
		}
		// Start delivers the current contents through p.Send, which blocks
		// until the program loop is running.
		go func() {
			if err := f.Start(); err != nil {
				p.Send(messages.ErrorMsg{Err: err})
			}
		}()
		defer f.Stop()
	}

	log.LogWithFields(log.F("locale", m.Locale().Tag.String())).Debug("starting tui")
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
