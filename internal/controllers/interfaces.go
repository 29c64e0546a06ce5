package controllers

import (
	"notepad-sqlite/internal/layout"
	"notepad-sqlite/internal/models"
)

// NoteStore is the persistence the controllers need; *store.NoteStore satisfies it.
type NoteStore interface {
	Insert(title, content string) (int64, error)
	Update(id int64, title, content string) error
	Search(query string) ([]models.Note, error)
	FetchOne(id int64) (models.Note, bool, error)
}

// QuerySource is the control holding the live search text.
type QuerySource interface {
	Text() string
}

// Card is everything a renderer needs to draw one note.
type Card struct {
	Info    layout.CardInfo
	Title   string
	Preview string
}

// Renderer draws the list view.
type Renderer interface {
	RenderCards(cards []Card)
	SetScrollRange(offset, max, page int)
}
