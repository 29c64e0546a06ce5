package app

import (
	"fyne.io/fyne/v2"
)

func (a *Application) setupMenus() {
	a.window.SetMainMenu(a.buildMainMenu())
}

func (a *Application) buildMainMenu() *fyne.MainMenu {
	quit := fyne.NewMenuItem("Quit", a.handlers.HandleQuit)
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Note", a.handlers.HandleNewNote),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Query Timings", a.handlers.HandleShowTimings),
	)

	return fyne.NewMainMenu(fileMenu, debugMenu)
}
