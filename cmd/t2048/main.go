// t2048 is the 2048 sliding-tile puzzle for the terminal, with animated
// slides.
//
// Usage:
//
//	t2048                    - Play
//	t2048 config             - Print the effective configuration as YAML
//
// Flags:
//
//	--fps <rate>             - Set tick rate (default: 60)
//	--seed <value>           - Set RNG seed for reproducible gameplay
//	--speed <preset>         - Animation speed: slow, normal, fast
//	--anim-ms <ms>           - Explicit animation length, 0 disables it
//	--input-policy <policy>  - buffer or drop keys pressed mid-slide
//	--config <path>          - Use a specific config file
//	--log-file <path>        - Write logs to a file
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options holds the values of the command-line flags.
type options struct {
	fps         int
	seed        int64
	speed       string
	animMS      int
	easing      string
	inputPolicy string
	target      int
	theme       string
	configPath  string
	logFile     string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "t2048",
		Short: "2048 in your terminal",
		Long: `Slide numbered tiles on a 4x4 grid. Equal tiles merge into their sum;
reach the target tile (2048 by default) to win.

Controls:
  Arrows/WASD/hjkl - Slide
  R                - New game (after a win or loss)
  Esc              - Menu (resume, new game, settings, quit)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Configuration is read from --config, ~/.t2048/config.yaml,
./configs/t2048.yaml or the built-in defaults, in that order.
Flags override the file.

Examples:
  t2048
  t2048 --speed fast
  t2048 --seed 42 --anim-ms 0
  t2048 --input-policy drop --target 512
  t2048 config --fps 30`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.IntVar(&opts.fps, "fps", 60, "Tick rate (frames per second)")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&opts.speed, "speed", "normal", "Animation speed preset: "+strings.Join(config.SpeedNames(), ", "))
	f.IntVar(&opts.animMS, "anim-ms", 150, "Animation length in milliseconds, overrides --speed (0 disables)")
	f.StringVar(&opts.easing, "easing", "linear", "Slide easing: linear, ease-out")
	f.StringVar(&opts.inputPolicy, "input-policy", "buffer", "Keys pressed mid-slide: buffer or drop")
	f.IntVar(&opts.target, "target", 2048, "Winning tile value (power of two >= 8)")
	f.StringVar(&opts.theme, "theme", "classic", "Color theme: "+strings.Join(tui.ThemeNames(), ", "))
	f.StringVar(&opts.configPath, "config", "", "Path to config YAML")
	f.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: discarded)")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, src, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	theme, err := tui.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", src, "animation", describeAnimation(cfg))

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := cfg.ToRuntime(width, height, opts.seed)
	if err := tui.Run(rc, tui.Options{
		Theme:     theme,
		Logger:    logger,
		QueueSize: cfg.Input.QueueSize,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
