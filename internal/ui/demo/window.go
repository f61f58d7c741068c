package demo

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"progressring/internal/core/animation"
	"progressring/internal/ui/preferences"
	"progressring/internal/ui/progressring"
)

// Status summarizes the ring for observers such as the tray.
type Status struct {
	Event    string
	Label    string
	State    animation.State
	Progress float32
}

// Window is the demo screen: a progress ring with animation controls.
type Window struct {
	window       fyne.Window
	ring         *progressring.ProgressRing
	statusLabel  *canvas.Text
	startButton  *widget.Button
	stopButton   *widget.Button
	pauseButton  *widget.Button
	resumeButton *widget.Button
	colorButton  *widget.Button
	logger       *zap.Logger
	onStatus     func(Status)
}

// New creates the demo window around an existing ring.
func New(app fyne.App, progressRing *progressring.ProgressRing, logger *zap.Logger) *Window {
	if logger == nil {
		logger = zap.NewNop()
	}
	window := app.NewWindow("Progress Ring")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	statusLabel := canvas.NewText("", color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff})
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 14

	demo := &Window{
		window:      window,
		ring:        progressRing,
		statusLabel: statusLabel,
		logger:      logger,
	}
	demo.startButton = widget.NewButton("Start", demo.Start)
	demo.stopButton = widget.NewButton("Stop", demo.Stop)
	demo.pauseButton = widget.NewButton("Pause", demo.Pause)
	demo.resumeButton = widget.NewButton("Resume", demo.Resume)
	demo.colorButton = widget.NewButton("Color", demo.NextColor)

	buttons := container.NewGridWithColumns(5,
		demo.startButton, demo.stopButton, demo.pauseButton, demo.resumeButton, demo.colorButton)
	window.SetContent(container.NewBorder(statusLabel, buttons, nil, nil, container.NewPadded(progressRing)))
	window.Resize(fyne.NewSize(420, 520))

	progressRing.SetListener(&ringListener{demo: demo})
	demo.publish("ready")
	return demo
}

// SetOnStatus sets a callback fired on every ring event.
func (demo *Window) SetOnStatus(handler func(Status)) {
	demo.onStatus = handler
}

// Show displays the window.
func (demo *Window) Show() {
	demo.window.Show()
}

// Window returns the underlying Fyne window.
func (demo *Window) Window() fyne.Window {
	return demo.window
}

// Start starts the sweep.
func (demo *Window) Start() {
	demo.ring.Start()
}

// Stop cancels the sweep. The ring emits no event for it, so status is published here.
func (demo *Window) Stop() {
	demo.ring.Stop()
	demo.publish("stopped")
}

// Pause suspends the sweep.
func (demo *Window) Pause() {
	demo.ring.Pause()
}

// Resume continues the sweep.
func (demo *Window) Resume() {
	demo.ring.Resume()
}

// TogglePause pauses a running sweep or resumes a paused one.
func (demo *Window) TogglePause() {
	if demo.ring.AnimationState() == animation.StatePaused {
		demo.Resume()
		return
	}
	demo.Pause()
}

// NextColor cycles the palette.
func (demo *Window) NextColor() {
	demo.ring.SetColorMode(demo.ring.ColorMode().Next())
	demo.publish("color " + demo.ring.ColorMode().String())
}

// Apply pushes saved preferences into the live ring.
func (demo *Window) Apply(settings preferences.Settings) {
	demo.ring.SetColorMode(settings.ColorMode)
	demo.ring.SetAnimationDuration(settings.AnimationDuration)
	demo.ring.SetProgressTextSize(demo.ring.Dp(settings.TextSize))
	if err := demo.ring.SetProgress(settings.Progress); err != nil {
		demo.logger.Warn("apply progress", zap.Error(err))
	}
	demo.publish("settings applied")
}

func (demo *Window) publish(event string) {
	status := Status{
		Event:    event,
		Label:    demo.ring.Label(),
		State:    demo.ring.AnimationState(),
		Progress: demo.ring.Progress(),
	}
	demo.statusLabel.Text = fmt.Sprintf("%s: %s%%", event, status.Label)
	demo.statusLabel.Refresh()
	if demo.onStatus != nil {
		demo.onStatus(status)
	}
}

// ringListener forwards ring callbacks to the demo window.
type ringListener struct {
	demo *Window
}

func (listener *ringListener) OnProgressValue(value float32) {
	listener.demo.publish("progress")
}

func (listener *ringListener) OnProgressStart() {
	listener.demo.logger.Info("progress start")
	listener.demo.publish("started")
}

func (listener *ringListener) OnProgressPause() {
	listener.demo.logger.Info("progress pause")
	listener.demo.publish("paused")
}

func (listener *ringListener) OnProgressResume() {
	listener.demo.logger.Info("progress resume")
	listener.demo.publish("resumed")
}

func (listener *ringListener) OnProgressEnd() {
	listener.demo.logger.Info("progress end")
	listener.demo.publish("finished")
}
