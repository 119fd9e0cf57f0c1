package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hanoi/internal/app"
	"hanoi/internal/game"
	"hanoi/internal/theme"
)

const longUsage = `Play the Tower of Hanoi in the terminal.

Move the whole tower from the left pole to the right pole, one disk at a
time, never placing a disk on top of a smaller one.

Controls:
  left, h    move the cursor one pole left
  right, l   move the cursor one pole right
  up, k      lift the top disk of the current pole
  down, j    put the lifted disk down
  r          reset the game
  ?          toggle help (tea frontend)
  q, ctrl+c  quit

Settings are read from defaults, then the --config YAML file, then HANOI_*
environment variables (NO_COLOR is honoured), then command-line flags.`

var errNotInteractive = errors.New("hanoi needs an interactive terminal")

type rootOptions struct {
	disks      int
	noColor    bool
	configPath string
	frontend   string
	theme      string
	logPath    string
	dataDir    string
	noStats    bool
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Environ())
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, environ []string) int {
	cmd := newRootCmd(stdout, environ)
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "hanoi: %v\n", err)
		return 1
	}
	return 0
}

// normalizeArgs accepts the single-dash -nc spelling, which pflag would
// otherwise read as the shorthands -n -c.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "-nc" {
			a = "--no-color"
		}
		out = append(out, a)
	}
	return out
}

func newRootCmd(stdout io.Writer, environ []string) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "hanoi",
		Short:         "Tower of Hanoi in the terminal",
		Long:          longUsage,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts, environ)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg, stdout)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&opts.disks, "disks", "d", app.DefaultDisks, "number of disks")
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringVar(&opts.dataDir, "data-dir", "", "directory holding the run history (default: user data dir)")

	f := root.Flags()
	f.BoolVar(&opts.noColor, "no-color", false, "draw disks with O/E glyphs instead of colour (also -nc)")
	f.StringVar(&opts.frontend, "frontend", app.FrontendTea, "terminal frontend: tea or tcell")
	f.StringVar(&opts.theme, "theme", "", "colour theme: "+strings.Join(theme.Variants(), ", "))
	f.StringVar(&opts.logPath, "log", "", "write JSON logs to this file")
	f.BoolVar(&opts.noStats, "no-stats", false, "do not record this run in the history")
	f.BoolVar(&opts.debug, "debug", false, "log every action")

	root.AddCommand(
		newSolveCmd(stdout, opts, environ),
		newStatsCmd(stdout, opts, environ),
		newManCmd(stdout, root),
	)
	return root
}

func newSolveCmd(stdout io.Writer, opts *rootOptions, environ []string) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print the optimal move sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts, environ)
			if err != nil {
				return err
			}
			if cfg.Disks > game.MaxSolveDisks {
				return fmt.Errorf("solve supports at most %d disks", game.MaxSolveDisks)
			}
			for i, m := range game.OptimalMoves(cfg.Disks) {
				fmt.Fprintf(stdout, "%d: %d -> %d\n", i+1, m.From, m.To)
			}
			fmt.Fprintf(stdout, "%d moves\n", game.MinMoves(cfg.Disks))
			return nil
		},
	}
}

func newStatsCmd(stdout io.Writer, opts *rootOptions, environ []string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the recorded run history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts, environ)
			if err != nil {
				return err
			}
			sums, err := app.Stats(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			_, err = io.WriteString(stdout, app.FormatStats(sums))
			return err
		},
	}
}

func newManCmd(stdout io.Writer, root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Print the man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			page, err := mcobra.NewManPage(1, root)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(stdout, page.Build(roff.NewDocument()))
			return err
		},
	}
}

// loadConfig layers defaults, the config file, the environment and the
// flags the user actually set, then validates the result.
func loadConfig(cmd *cobra.Command, opts *rootOptions, environ []string) (app.Config, error) {
	cfg := app.DefaultConfig()
	if opts.configPath != "" {
		if err := cfg.LoadFile(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(environ); err != nil {
		return cfg, err
	}

	applyFlags(&cfg, cmd.Flags(), opts)
	if cmd.Name() == "stats" {
		cfg.NoStats = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFlags copies only the flags that were set on the command line, so
// unset flags never mask the file or the environment.
func applyFlags(cfg *app.Config, f *pflag.FlagSet, opts *rootOptions) {
	f.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "disks":
			cfg.Disks = opts.disks
		case "data-dir":
			cfg.DataDir = opts.dataDir
		case "no-color":
			cfg.NoColor = opts.noColor
		case "frontend":
			cfg.Frontend = opts.frontend
		case "theme":
			cfg.UI.StyleVariant = opts.theme
		case "log":
			cfg.LogPath = opts.logPath
		case "no-stats":
			cfg.NoStats = opts.noStats
		case "debug":
			cfg.Debug = opts.debug
		}
	})
}

func play(ctx context.Context, cfg app.Config, stdout io.Writer) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errNotInteractive
	}
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Run(ctx)
	if err != nil {
		return err
	}
	if res.Solved {
		fmt.Fprintln(stdout, res.Message)
	}
	return nil
}
