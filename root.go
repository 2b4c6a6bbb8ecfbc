package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alxndrztsv/screen-recorder/app"
	"github.com/alxndrztsv/screen-recorder/config"
	"github.com/alxndrztsv/screen-recorder/domain/capture"
)

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	var (
		cfgPath      string
		listMonitors bool
	)
	cmd := &cobra.Command{
		Use:   "screen-recorder",
		Short: "Record a monitor to a video file with a custom cursor overlay",
		Long: `Captures one monitor's framebuffer at a target rate, composites a cursor
sprite onto every frame and streams the result into ffmpeg. A small preview
window shows what is being recorded; stop with F5, q, the stop button, or by
closing the window.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listMonitors {
				return printMonitors(cmd)
			}
			cfg, err := resolveConfig(cmd.Flags(), cfgPath)
			if err != nil {
				return err
			}
			logger := NewLogger(levelFor(cfg.Debug))
			application, err := app.NewApp(cfg, cfg.CursorPathExplicit(cmd.Flags().Changed("cursor")), logger)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	fl := cmd.Flags()
	fl.Int("monitor", defaults.Monitor, "1-based monitor index to record")
	fl.Float64("fps", defaults.FPS, "target frames per second")
	fl.String("cursor", defaults.CursorPath, "cursor sprite PNG path")
	fl.Int("size", defaults.CursorSize, "cursor sprite size in pixels")
	fl.String("output", defaults.OutputPath, "output video path; the extension picks the codec")
	fl.Bool("no-cursor", false, "record without the cursor overlay")
	fl.String("ffmpeg", defaults.FFmpegPath, "ffmpeg binary to invoke")
	fl.StringVar(&cfgPath, "config", "", "JSON config file path")
	fl.BoolVar(&listMonitors, "list-monitors", false, "print the attached monitors and exit")
	fl.Bool("debug", false, "verbose logging and runtime diagnostics")
	return cmd
}

// resolveConfig layers settings: defaults, then the optional config file,
// then RECORDER_* environment variables, then explicit flags. A config path
// was asked for by name, so unlike the default cursor sprite it must exist.
func resolveConfig(fl *pflag.FlagSet, cfgPath string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", cfgPath, err)
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", cfgPath, err)
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	applyFlags(cfg, fl)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags onto the config, leaving everything
// else at its resolved value.
func applyFlags(cfg *config.Config, fl *pflag.FlagSet) {
	if fl.Changed("monitor") {
		cfg.Monitor, _ = fl.GetInt("monitor")
	}
	if fl.Changed("fps") {
		cfg.FPS, _ = fl.GetFloat64("fps")
	}
	if fl.Changed("cursor") {
		cfg.CursorPath, _ = fl.GetString("cursor")
	}
	if fl.Changed("size") {
		cfg.CursorSize, _ = fl.GetInt("size")
	}
	if fl.Changed("output") {
		cfg.OutputPath, _ = fl.GetString("output")
	}
	if fl.Changed("no-cursor") {
		cfg.NoCursor, _ = fl.GetBool("no-cursor")
	}
	if fl.Changed("ffmpeg") {
		cfg.FFmpegPath, _ = fl.GetString("ffmpeg")
	}
	if fl.Changed("debug") {
		cfg.Debug, _ = fl.GetBool("debug")
	}
}

func printMonitors(cmd *cobra.Command) error {
	regions, err := capture.Displays()
	if err != nil {
		return err
	}
	for _, r := range regions {
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
	}
	return nil
}
