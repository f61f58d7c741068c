package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Progress Ring"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart       func()
	OnTogglePause func()
	OnStop        func()
	OnNextColor   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	stopItem    *fyne.MenuItem
	colorItem   *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks. app may be nil
// when the platform has no tray; the manager then only tracks state.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.stopItem = fyne.NewMenuItem("Stop", invoke(&manager.callbacks.OnStop))
	manager.colorItem = fyne.NewMenuItem("Next color", invoke(&manager.callbacks.OnNextColor))
	manager.prefsItem = fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))

	manager.refreshStatus()
	return manager
}

// SetState updates status, running and pause flags at once. The menu is
// rebuilt only when something visible changed.
func (manager *Manager) SetState(status string, running, paused bool) {
	if !running {
		paused = false
	}
	if status == manager.statusLabel && running == manager.running && paused == manager.paused {
		return
	}
	manager.statusLabel = status
	manager.running = running
	manager.paused = paused
	manager.refreshStatus()
}

// Menu returns the menu currently installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.stopItem,
		manager.colorItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	)
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)

	if manager.paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.pauseItem.Disabled = !manager.running
	manager.stopItem.Disabled = !manager.running
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

// invoke reads the handler at call time so callbacks can be replaced after New.
func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
