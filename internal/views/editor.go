package views

import (
	"notepad-sqlite/internal/controllers"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	NewNoteTitle  = "New Note"
	EditNoteTitle = "Edit Note"

	editorWidth  = 420
	editorHeight = 380
)

// EditorView is a modeless window editing one note. Closing it is the only
// way to save.
type EditorView struct {
	window       fyne.Window
	controller   *controllers.EditorController
	titleEntry   *widget.Entry
	contentEntry *widget.Entry
}

func NewEditorView(app fyne.App, controller *controllers.EditorController) *EditorView {
	windowTitle := EditNoteTitle
	if controller.IsNew() {
		windowTitle = NewNoteTitle
	}

	ev := &EditorView{
		window:     app.NewWindow(windowTitle),
		controller: controller,
	}

	ev.initializeComponents()
	ev.buildLayout()
	ev.window.SetCloseIntercept(ev.Close)

	return ev
}

func (ev *EditorView) initializeComponents() {
	title, content := ev.controller.Load()

	ev.titleEntry = widget.NewEntry()
	ev.titleEntry.SetText(title)

	ev.contentEntry = widget.NewMultiLineEntry()
	ev.contentEntry.Wrapping = fyne.TextWrapWord
	ev.contentEntry.SetText(content)
}

func (ev *EditorView) buildLayout() {
	top := container.NewVBox(
		widget.NewLabel("Title:"),
		ev.titleEntry,
		widget.NewLabel("Content:"),
	)

	ev.window.SetContent(container.NewBorder(top, nil, nil, nil, ev.contentEntry))
	ev.window.Resize(fyne.NewSize(editorWidth, editorHeight))
}

func (ev *EditorView) Show() {
	ev.window.Show()
	ev.window.Canvas().Focus(ev.titleEntry)
}

// Close commits the current field values and closes the window.
func (ev *EditorView) Close() {
	ev.controller.Commit(ev.titleEntry.Text, ev.contentEntry.Text)
	ev.window.Close()
}

func (ev *EditorView) Window() fyne.Window {
	return ev.window
}

func (ev *EditorView) TitleEntry() *widget.Entry {
	return ev.titleEntry
}

func (ev *EditorView) ContentEntry() *widget.Entry {
	return ev.contentEntry
}
