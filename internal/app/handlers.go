package app

import (
	"notepad-sqlite/internal/controllers"
	"notepad-sqlite/internal/debug/timing"
	"notepad-sqlite/internal/layout"
	"notepad-sqlite/internal/logger"
	"notepad-sqlite/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Handlers turns view and menu events into controller calls. Store errors
// are logged by the controllers; nothing here shows a dialog for them.
type Handlers struct {
	fyneApp fyne.App
	window  fyne.Window
	store   controllers.NoteStore
	list    *controllers.ListController
	timings *timing.Tracker
	logger  logger.Logger

	quitHandler func()
	editors     []*views.EditorView
}

func NewHandlers(
	fyneApp fyne.App,
	window fyne.Window,
	store controllers.NoteStore,
	list *controllers.ListController,
	timings *timing.Tracker,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		fyneApp: fyneApp,
		window:  window,
		store:   store,
		list:    list,
		timings: timings,
		logger:  log,
	}
}

func (h *Handlers) SetQuitHandler(handler func()) {
	h.quitHandler = handler
}

func (h *Handlers) HandleSearchChanged(query string) {
	_ = h.list.FilterChanged(query)
}

func (h *Handlers) HandleScroll(action layout.ScrollAction, trackPos int) {
	_ = h.list.Scroll(action, trackPos)
}

func (h *Handlers) HandleCardTap(p layout.Point) {
	h.list.Click(p)
}

func (h *Handlers) HandleNewNote() {
	h.list.NewNote()
}

// HandleOpenEditor opens an editor window; noteID 0 starts a new note.
// Several editors may be open at once, even for the same note.
func (h *Handlers) HandleOpenEditor(noteID int64) {
	h.logger.Debug("Handlers", "opening editor", map[string]interface{}{
		"note_id": noteID,
	})

	ctrl := controllers.NewEditorController(h.store, noteID, h.list.Notifier(), h.logger)
	editor := views.NewEditorView(h.fyneApp, ctrl)

	h.editors = append(h.editors, editor)
	editor.Window().SetOnClosed(func() {
		h.forget(editor)
	})

	editor.Show()
}

// OpenEditors lists editor windows that have not been closed.
func (h *Handlers) OpenEditors() []*views.EditorView {
	return append([]*views.EditorView(nil), h.editors...)
}

func (h *Handlers) HandleShowTimings() {
	dialog.ShowInformation("Query Timings", h.timings.Report(), h.window)
}

func (h *Handlers) HandleQuit() {
	if h.quitHandler != nil {
		h.quitHandler()
	}
}

func (h *Handlers) forget(editor *views.EditorView) {
	for i, e := range h.editors {
		if e == editor {
			h.editors = append(h.editors[:i], h.editors[i+1:]...)
			return
		}
	}
}
