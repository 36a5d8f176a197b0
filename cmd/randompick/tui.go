package main

import (
	"randompick/internal/gui"
	"randompick/internal/tui"
	"randompick/internal/tui/styles"

	"github.com/spf13/cobra"
)

// NewTUICmd creates the tui command
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the list and pick in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	interactiveLogging()

	engine, err := newEngine()
	if err != nil {
		return err
	}
	if inputFile != "" && followFile == "" {
		text, err := readInput(cmd, nil)
		if err != nil {
			return err
		}
		engine.SetInput(text)
	}

	m := tui.New(engine, styles.FromConfig(cfg))
	return tui.Run(cmd.Context(), m, tui.Options{FollowPath: followFile})
}

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactiveLogging()

			engine, err := newEngine()
			if err != nil {
				return err
			}
			if inputFile != "" && followFile == "" {
				text, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				engine.SetInput(text)
			}
			return gui.StartGUI(engine, cfg, followFile)
		},
	}
}
