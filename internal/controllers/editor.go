package controllers

import (
	"notepad-sqlite/internal/logger"
)

const editorComponent = "EditorController"

// EditorController backs one editor window. NoteID 0 means a new note.
type EditorController struct {
	store     NoteStore
	noteID    int64
	notify    func()
	logger    logger.Logger
	committed bool
}

func NewEditorController(store NoteStore, noteID int64, notify func(), log logger.Logger) *EditorController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &EditorController{
		store:  store,
		noteID: noteID,
		notify: notify,
		logger: log,
	}
}

func (ec *EditorController) NoteID() int64 {
	return ec.noteID
}

func (ec *EditorController) IsNew() bool {
	return ec.noteID <= 0
}

// Load returns the initial field values. A note that cannot be found, or
// cannot be read, opens blank without telling the user.
func (ec *EditorController) Load() (title, content string) {
	if ec.IsNew() {
		return "", ""
	}

	note, found, err := ec.store.FetchOne(ec.noteID)
	if err != nil {
		ec.logger.Error(editorComponent, err, map[string]interface{}{
			"note_id": ec.noteID,
		})
		return "", ""
	}
	if !found {
		ec.logger.Debug(editorComponent, "note not found, opening blank", map[string]interface{}{
			"note_id": ec.noteID,
		})
		return "", ""
	}

	return note.Title, note.Content
}

// Commit persists the fields when the window closes and then fires the
// refresh notification. Only the first call has any effect.
//
// Empty content skips persistence entirely, also for an existing note: the
// stored record is left exactly as it was, neither blanked nor deleted.
// Pending product sign-off.
func (ec *EditorController) Commit(title, content string) bool {
	if ec.committed {
		return false
	}
	ec.committed = true

	saved := ec.persist(title, content)

	if ec.notify != nil {
		ec.notify()
	}
	return saved
}

func (ec *EditorController) persist(title, content string) bool {
	if content == "" {
		ec.logger.Debug(editorComponent, "empty content, nothing saved", map[string]interface{}{
			"note_id": ec.noteID,
		})
		return false
	}

	if ec.IsNew() {
		id, err := ec.store.Insert(title, content)
		if err != nil {
			ec.logger.Error(editorComponent, err, map[string]interface{}{
				"op": "insert",
			})
			return false
		}
		ec.noteID = id
		ec.logger.Info(editorComponent, "note created", map[string]interface{}{
			"note_id": id,
		})
		return true
	}

	// An id that no longer exists updates zero rows and still counts as saved.
	if err := ec.store.Update(ec.noteID, title, content); err != nil {
		ec.logger.Error(editorComponent, err, map[string]interface{}{
			"op":      "update",
			"note_id": ec.noteID,
		})
		return false
	}
	ec.logger.Info(editorComponent, "note updated", map[string]interface{}{
		"note_id": ec.noteID,
	})
	return true
}
