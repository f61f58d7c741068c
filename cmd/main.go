package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"progressring/internal/core/animation"
	"progressring/internal/core/ring"
	"progressring/internal/storage"
	"progressring/internal/ui/demo"
	"progressring/internal/ui/preferences"
	"progressring/internal/ui/progressring"
	"progressring/internal/ui/tray"
	"progressring/resources"
)

const appName = "ProgressRing"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(settings preferences.Settings, settingsPath string, logger *zap.Logger) error {
	fyneApp := app.NewWithID("com.progressring.demo")
	fyneApp.SetIcon(resources.MustLogo("progress_ring.svg"))

	progressRing, err := progressring.New(settings.RingConfig(), ring.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create progress ring: %w", err)
	}

	demoWindow := demo.New(fyneApp, progressRing, logger)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		demoWindow.Apply(updated)
		if err := storage.SaveSettings(settingsPath, updated); err != nil {
			logger.Error("save settings", zap.Error(err))
			return
		}
		logger.Info("settings saved", zap.String("settings", updated.String()))
	})

	// Tray is optional; without it the demo window still drives everything.
	var desktopApp desktop.App
	if candidate, ok := fyneApp.(desktop.App); ok {
		desktopApp = candidate
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnStart:       demoWindow.Start,
		OnTogglePause: demoWindow.TogglePause,
		OnStop:        demoWindow.Stop,
		OnNextColor:   demoWindow.NextColor,
		OnPreferences: prefsWindow.Show,
		OnQuit:        fyneApp.Quit,
	})

	demoWindow.SetOnStatus(func(status demo.Status) {
		trayManager.SetState(fmt.Sprintf("%s %s%%", status.State, status.Label),
			status.State != animation.StateIdle, status.State == animation.StatePaused)
	})

	demoWindow.Window().SetMaster()
	demoWindow.Window().ShowAndRun()
	return nil
}
