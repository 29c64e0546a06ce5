package app

import (
	"errors"

	"notepad-sqlite/internal/store"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FatalTitle names the startup failure for the error window.
func FatalTitle(err error) string {
	var openErr *store.StoreOpenError
	if errors.As(err, &openErr) {
		return "DB Open Error"
	}

	var schemaErr *store.SchemaError
	if errors.As(err, &schemaErr) {
		return "DB Error"
	}

	return "Startup Error"
}

// NewFatalWindow builds the window reporting a startup failure. Dismissing
// it quits the application.
func NewFatalWindow(fyneApp fyne.App, err error) fyne.Window {
	window := fyneApp.NewWindow(FatalTitle(err))

	message := widget.NewLabel(err.Error())
	message.Wrapping = fyne.TextWrapWord

	ok := widget.NewButton("OK", fyneApp.Quit)
	ok.Importance = widget.HighImportance

	window.SetContent(container.NewBorder(nil, container.NewCenter(ok), nil, nil, message))
	window.Resize(fyne.NewSize(360, 160))
	window.CenterOnScreen()
	window.SetMaster()

	return window
}

// ShowFatal reports err and blocks until the user dismisses it.
func ShowFatal(fyneApp fyne.App, err error) {
	NewFatalWindow(fyneApp, err).ShowAndRun()
}
