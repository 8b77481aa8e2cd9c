package app

import (
	"sync"

	"chefs-menu/internal/logger"
	"chefs-menu/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle connects window closing and process signals to an orderly
// shutdown of the registered components.
type Lifecycle struct {
	fyneApp     fyne.App
	window      fyne.Window
	shutdownMgr *shutdown.Manager
	logger      logger.Logger
	once        sync.Once
}

// NewLifecycle creates a lifecycle for the given window
func NewLifecycle(fyneApp fyne.App, window fyne.Window, mgr *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:     fyneApp,
		window:      window,
		shutdownMgr: mgr,
		logger:      log,
	}
}

// Start installs the close intercept and the signal listener.
func (l *Lifecycle) Start() {
	l.window.SetCloseIntercept(func() {
		l.logger.Info("Lifecycle", "window close requested", nil)
		l.Shutdown()
		l.window.Close()
	})

	l.shutdownMgr.Listen(func() {
		fyne.Do(l.fyneApp.Quit)
	})
}

// Shutdown runs the component shutdown sequence once.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.shutdownMgr.Shutdown()
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

// Done is closed once shutdown has started
func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdownMgr.Done()
}
