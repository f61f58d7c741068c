package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"progressring/internal/core/model"
	"progressring/internal/logging"
	"progressring/internal/storage"
	"progressring/internal/ui/preferences"
)

// options holds command line overrides. Zero values leave stored settings untouched.
type options struct {
	configDir string
	color     string
	duration  time.Duration
	progress  float32
	textSize  float32
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{progress: -1}

	cmd := &cobra.Command{
		Use:   "progressring",
		Short: "Demo of the circular progress ring widget.",
		Long: `progressring opens a window with an animated circular progress ring
and buttons to start, stop, pause and resume it or cycle its colors.
Flags override the preferences saved from the settings window.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(opts.debug)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // best-effort flush

			settingsPath, err := storage.SettingsPath(opts.configDir, appName)
			if err != nil {
				return err
			}
			stored, err := storage.LoadSettings(settingsPath)
			if err != nil {
				logger.Warn("load settings, using defaults", zap.Error(err))
			}
			settings, err := opts.apply(stored)
			if err != nil {
				return err
			}
			logger.Info("starting", zap.String("settings", settings.String()), zap.String("config", settingsPath))
			return run(settings, settingsPath, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config-dir", "", "directory holding settings.yaml (default is the user config dir)")
	flags.StringVar(&opts.color, "color", "", "color mode: blue, red or green")
	flags.DurationVar(&opts.duration, "duration", 0, "animation duration, e.g. 10s")
	flags.Float32Var(&opts.progress, "progress", -1, "initial progress in degrees (0-360)")
	flags.Float32Var(&opts.textSize, "text-size", 0, "label text size in dp")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

// apply overlays flags on stored settings.
func (opts *options) apply(settings preferences.Settings) (preferences.Settings, error) {
	if opts.color != "" {
		mode, err := model.ParseColorMode(opts.color)
		if err != nil {
			return settings, fmt.Errorf("--color: %w", err)
		}
		settings.ColorMode = mode
	}
	if opts.duration < 0 {
		return settings, fmt.Errorf("--duration must be positive, got %v", opts.duration)
	}
	if opts.duration > 0 {
		settings.AnimationDuration = opts.duration
	}
	if opts.progress > 360 {
		return settings, fmt.Errorf("--progress must be within 0-360, got %v", opts.progress)
	}
	if opts.progress >= 0 {
		settings.Progress = opts.progress
	}
	if opts.textSize < 0 {
		return settings, fmt.Errorf("--text-size must be positive, got %v", opts.textSize)
	}
	if opts.textSize > 0 {
		settings.TextSize = opts.textSize
	}
	return settings, nil
}
