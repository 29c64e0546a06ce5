package app

import (
	"fyne.io/fyne/v2"
)

// Run shows the main window and blocks until the application quits.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.Quit)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()

	a.Shutdown()
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})
}

// Quit shuts everything down and stops the event loop.
func (a *Application) Quit() {
	a.Shutdown()
	a.fyneApp.Quit()
}

// Shutdown closes the list controller, then the store. Safe to call more
// than once.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
