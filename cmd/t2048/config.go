package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

func newConfigCmd(opts *options) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would run with, after the config
file search and flag overrides, as YAML. Use --defaults to print the
built-in defaults file, a good starting point for ~/.t2048/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := out.Write(config.DefaultYAML())
				return err
			}

			cfg, src, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# source: %s\n", src)
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults file")
	return cmd
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, config.Source, error) {
	cfg, src, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, src, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = opts.fps
	}
	if flags.Changed("speed") {
		cfg.Animation.Speed = config.SpeedPreset(opts.speed)
		// An explicit preset beats a duration from the file
		if !flags.Changed("anim-ms") {
			cfg.Animation.DurationMS = nil
		}
	}
	if flags.Changed("anim-ms") {
		ms := opts.animMS
		cfg.Animation.DurationMS = &ms
	}
	if flags.Changed("easing") {
		cfg.Animation.Easing = core.Easing(opts.easing)
	}
	if flags.Changed("input-policy") {
		cfg.Input.Policy = core.InputPolicy(opts.inputPolicy)
	}
	if flags.Changed("target") {
		cfg.Rules.Target = opts.target
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}

	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	if _, err := tui.ThemeByName(cfg.Theme); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

// describeAnimation formats the animation settings for logs.
func describeAnimation(cfg config.Config) string {
	d := cfg.Animation.Duration()
	if d == 0 {
		return "off"
	}
	return fmt.Sprintf("%s %s", d.Round(time.Millisecond), cfg.Animation.Easing)
}
