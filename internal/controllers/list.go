package controllers

import (
	"sync/atomic"

	"notepad-sqlite/internal/debug/timing"
	"notepad-sqlite/internal/layout"
	"notepad-sqlite/internal/logger"
	"notepad-sqlite/internal/models"
)

const listComponent = "ListController"

// ListController keeps the card grid in step with the store, the search
// text and the scroll offset. It is driven from the UI thread only.
type ListController struct {
	store    NoteStore
	renderer Renderer
	query    QuerySource
	logger   logger.Logger
	timings  *timing.Tracker

	scroller      layout.Scroller
	notes         []models.Note
	cards         []layout.CardInfo
	contentHeight int

	editorOpener func(noteID int64)
	closed       atomic.Bool
}

func NewListController(
	store NoteStore,
	renderer Renderer,
	query QuerySource,
	log logger.Logger,
	timings *timing.Tracker,
) *ListController {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &ListController{
		store:         store,
		renderer:      renderer,
		query:         query,
		logger:        log,
		timings:       timings,
		cards:         make([]layout.CardInfo, 0),
		contentHeight: layout.ContentHeight(0),
	}
}

// SetEditorOpener registers what happens when a note is chosen (0 = new note).
func (lc *ListController) SetEditorOpener(opener func(noteID int64)) {
	lc.editorOpener = opener
}

// FilterChanged handles an edit of the search box. The box keeps its own
// text; the controller never writes back into it.
func (lc *ListController) FilterChanged(query string) error {
	lc.logger.Debug(listComponent, "filter changed", map[string]interface{}{
		"query": query,
	})
	return lc.refresh(query)
}

// DataChanged handles a save from an editor. The query is read from the
// search box at call time, since the edit may have happened meanwhile.
func (lc *ListController) DataChanged() error {
	return lc.refresh(lc.currentQuery())
}

// Refresh re-queries with the current search text.
func (lc *ListController) Refresh() error {
	return lc.refresh(lc.currentQuery())
}

// Scroll applies one scroll gesture; trackPos is only used by ScrollTrack.
func (lc *ListController) Scroll(action layout.ScrollAction, trackPos int) error {
	if !lc.scroller.Apply(action, trackPos, lc.contentHeight) {
		return nil
	}

	lc.logger.Debug(listComponent, "scrolled", map[string]interface{}{
		"action": action.String(),
		"offset": lc.scroller.Offset(),
	})
	return lc.refresh(lc.currentQuery())
}

// CardAt hit-tests against the cards of the last render.
func (lc *ListController) CardAt(p layout.Point) (int64, bool) {
	return layout.FindCardAt(p, lc.cards)
}

// Click opens the editor for the card under p, if any.
func (lc *ListController) Click(p layout.Point) bool {
	id, ok := lc.CardAt(p)
	if !ok {
		return false
	}

	lc.logger.Debug(listComponent, "card selected", map[string]interface{}{
		"note_id": id,
	})
	lc.openEditor(id)
	return true
}

// NewNote opens an editor for a note that does not exist yet.
func (lc *ListController) NewNote() {
	lc.openEditor(0)
}

// Notifier returns the callback editors fire after closing. Once the
// controller is shut down the callback does nothing.
func (lc *ListController) Notifier() func() {
	return func() {
		if lc.closed.Load() {
			lc.logger.Debug(listComponent, "refresh dropped after shutdown", nil)
			return
		}
		_ = lc.DataChanged()
	}
}

func (lc *ListController) Cards() []layout.CardInfo {
	cards := make([]layout.CardInfo, len(lc.cards))
	copy(cards, lc.cards)
	return cards
}

func (lc *ListController) Offset() int {
	return lc.scroller.Offset()
}

func (lc *ListController) ContentHeight() int {
	return lc.contentHeight
}

func (lc *ListController) Shutdown() {
	if lc.closed.Swap(true) {
		return
	}
	lc.logger.Info(listComponent, "shutdown", nil)
}

func (lc *ListController) currentQuery() string {
	if lc.query == nil {
		return ""
	}
	return lc.query.Text()
}

func (lc *ListController) openEditor(id int64) {
	if lc.editorOpener == nil || lc.closed.Load() {
		return
	}
	lc.editorOpener(id)
}

// refresh replaces notes and cards wholesale. On a store failure the
// previous render stays as it was.
func (lc *ListController) refresh(query string) error {
	if lc.closed.Load() {
		return nil
	}
	defer lc.timings.Start("list.refresh").End()

	notes, err := lc.store.Search(query)
	if err != nil {
		lc.logger.Error(listComponent, err, map[string]interface{}{
			"query": query,
		})
		return err
	}

	contentHeight := layout.ContentHeight(len(notes))
	lc.scroller.Clamp(contentHeight)

	grid := layout.Compute(notes, lc.scroller.Offset())
	lc.notes = notes
	lc.cards = grid.Cards
	lc.contentHeight = grid.ContentHeight

	lc.render()

	lc.logger.Debug(listComponent, "refreshed", map[string]interface{}{
		"query":  query,
		"notes":  len(notes),
		"offset": lc.scroller.Offset(),
	})
	return nil
}

func (lc *ListController) render() {
	if lc.renderer == nil {
		return
	}

	cards := make([]Card, len(lc.cards))
	for i, info := range lc.cards {
		note := lc.notes[i]
		cards[i] = Card{
			Info:    info,
			Title:   note.Title,
			Preview: note.Preview(),
		}
	}

	lc.renderer.RenderCards(cards)
	lc.renderer.SetScrollRange(lc.scroller.Offset(), lc.contentHeight, layout.PageSize)
}
