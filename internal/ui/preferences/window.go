package preferences

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"progressring/internal/core/model"
)

var colorOptions = []string{
	model.ColorBlue.String(),
	model.ColorRed.String(),
	model.ColorGreen.String(),
}

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	duration  *widget.Entry
	textSize  *widget.Entry
	progress  *widget.Slider
	colorMode *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Progress Ring Settings")

	duration := widget.NewEntry()
	textSize := widget.NewEntry()
	progress := widget.NewSlider(0, 360)
	progress.Step = 1
	colorMode := widget.NewSelect(colorOptions, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Ring", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Animation duration"), duration, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Text size"), textSize, widget.NewLabel("dp")),
		widget.NewLabel("Initial progress (degrees)"),
		progress,
		container.NewHBox(widget.NewLabel("Color"), colorMode),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 300))

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		duration:  duration,
		textSize:  textSize,
		progress:  progress,
		colorMode: colorMode,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.duration.SetText(strconv.FormatInt(settings.AnimationDuration.Milliseconds(), 10))
	prefs.textSize.SetText(strconv.FormatFloat(float64(settings.TextSize), 'f', -1, 32))
	prefs.progress.SetValue(float64(settings.Progress))
	prefs.colorMode.SetSelected(settings.ColorMode.String())
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.duration.Text); ok {
		settings.AnimationDuration = time.Duration(millis) * time.Millisecond
	}
	if size, ok := parsePositiveFloat(prefs.textSize.Text); ok {
		settings.TextSize = size
	}
	settings.Progress = float32(prefs.progress.Value)
	if mode, err := model.ParseColorMode(prefs.colorMode.Selected); err == nil {
		settings.ColorMode = mode
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func parsePositiveFloat(value string) (float32, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return float32(parsed), true
}
