package main

import (
	"io"
	"os"
	"strings"
	"time"

	"randompick/internal/config"
	"randompick/internal/errors"
	"randompick/internal/locale"
	"randompick/internal/log"
	"randompick/internal/picker"
	"randompick/internal/watch"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	cfg        *config.Config
	lang       string
	debug      bool
	inputFile  string
	followFile string
	ticks      int
	interval   time.Duration
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "randompick",
		Short: "Pick one item at random from a list",
		Long: `randompick reads a list of items, one per line, cycles through a few
random candidates and then settles on one of them.

Run it without a subcommand in a terminal to get the interactive editor;
with piped input it behaves like "randompick pick".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) && inputFile == "" {
				return runTUI(cmd)
			}
			return runPick(cmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/randompick/config.yaml)")
	flags.StringVar(&lang, "lang", "", "interface language: en, es or auto (default from config)")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.StringVarP(&inputFile, "file", "f", "", "read items from this file")
	flags.StringVar(&followFile, "follow", "", "keep the input in sync with this file (tui and gui)")
	flags.IntVar(&ticks, "ticks", config.DefaultTicks, "candidates shown before the final pick")
	flags.DurationVar(&interval, "interval", config.DefaultInterval, "delay between candidates")

	rootCmd.AddCommand(NewPickCmd())
	rootCmd.AddCommand(NewTUICmd())
	rootCmd.AddCommand(NewGUICmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// loadConfig reads the config file and lays the flags over it.
func loadConfig(cmd *cobra.Command) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Locale = lang
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("ticks") {
		cfg.Animation.Ticks = ticks
	}
	if flags.Changed("interval") {
		cfg.Animation.Interval = interval
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetDebug(cfg.Debug)
	log.LogWithFields(
		log.F("locale", cfg.Locale),
		log.F("ticks", cfg.Animation.Ticks),
		log.F("interval", cfg.Animation.Interval),
	).Debug("configuration loaded")
	return nil
}

// loadLocale resolves the configured locale, consulting the environment for "auto".
func loadLocale() (*locale.Locale, error) {
	tag := cfg.Locale
	if tag == locale.Auto {
		tag = locale.FromEnv()
	}
	return locale.Load(tag)
}

func newEngine() (*picker.Engine, error) {
	loc, err := loadLocale()
	if err != nil {
		return nil, err
	}
	return picker.New(loc,
		picker.WithTicks(cfg.Animation.Ticks),
		picker.WithInterval(cfg.Animation.Interval),
		picker.WithExclude(cfg.Exclude...),
	)
}

// interactiveLogging keeps log output off a screen owned by the TUI or GUI.
func interactiveLogging() {
	path := cfg.LogFile
	if path == "" && cfg.Debug {
		path = "randompick.log"
	}
	if path == "" {
		log.Configure(log.WithOutput(io.Discard))
		return
	}
	log.Configure(log.WithFile(path))
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readInput collects the raw item text: positional arguments win, then
// --file, then standard input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	if inputFile != "" {
		return watch.ReadItemsFile(inputFile)
	}
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "reading standard input")
	}
	return string(data), nil
}
