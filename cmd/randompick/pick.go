package main

import (
	"fmt"

	"randompick/internal/errors"
	"randompick/internal/picker"

	"github.com/spf13/cobra"
)

// NewPickCmd creates the pick command
func NewPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [item...]",
		Short: "Pick one item and print it",
		Long: `Pick one item from the arguments, the --file or standard input and print it.

When standard output is a terminal the candidates are shown on one line while
the pick is in progress.`,
		Example: `  randompick pick Alice Bob Carol
  randompick pick --file team.txt
  printf 'tea\ncoffee\n' | randompick pick`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args)
		},
	}
}

func runPick(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	out := cmd.OutOrStdout()
	tty := isTerminal(out)
	done := make(chan picker.Snapshot, 1)

	unsubscribe := engine.Subscribe(func(s picker.Snapshot) {
		switch s.State {
		case picker.Animating:
			if tty && s.Display != "" {
				fmt.Fprintf(out, "\r\033[K%s", s.Display)
			}
		case picker.Resolved, picker.EmptyInputError:
			select {
			case done <- s:
			default:
			}
		}
	})
	defer unsubscribe()

	engine.SetInput(text)
	if err := engine.Pick(); err != nil {
		return err
	}

	var final picker.Snapshot
	select {
	case final = <-done:
	case <-cmd.Context().Done():
		engine.Close()
		if tty {
			fmt.Fprint(out, "\r\033[K")
		}
		return cmd.Context().Err()
	}

	if final.State == picker.EmptyInputError {
		return errors.NewKind(final.Display, errors.InvalidInput)
	}
	if tty {
		fmt.Fprint(out, "\r\033[K")
	}
	fmt.Fprintln(out, final.Display)
	return nil
}
