package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"notepad-sqlite/internal/models"
	"notepad-sqlite/internal/store"
)

type searchBox struct {
	text string
}

func (s *searchBox) Text() string { return s.text }

type recordingRenderer struct {
	renders [][]Card
	offset  int
	max     int
	page    int
}

func (r *recordingRenderer) RenderCards(cards []Card) {
	r.renders = append(r.renders, cards)
}

func (r *recordingRenderer) SetScrollRange(offset, max, page int) {
	r.offset, r.max, r.page = offset, max, page
}

func (r *recordingRenderer) last() []Card {
	if len(r.renders) == 0 {
		return nil
	}
	return r.renders[len(r.renders)-1]
}

var errDisk = errors.New("disk I/O error")

// failingStore wraps a real store and fails selected operations.
type failingStore struct {
	NoteStore
	failSearch bool
	failInsert bool
	failUpdate bool
	failFetch  bool
	inserts    int
	updates    int
}

func (f *failingStore) Search(query string) ([]models.Note, error) {
	if f.failSearch {
		return nil, errDisk
	}
	return f.NoteStore.Search(query)
}

func (f *failingStore) Insert(title, content string) (int64, error) {
	f.inserts++
	if f.failInsert {
		return 0, errDisk
	}
	return f.NoteStore.Insert(title, content)
}

func (f *failingStore) Update(id int64, title, content string) error {
	f.updates++
	if f.failUpdate {
		return errDisk
	}
	return f.NoteStore.Update(id, title, content)
}

func (f *failingStore) FetchOne(id int64) (models.Note, bool, error) {
	if f.failFetch {
		return models.Note{}, false, errDisk
	}
	return f.NoteStore.FetchOne(id)
}

func newStore(t *testing.T) *store.NoteStore {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s NoteStore, notes ...[2]string) {
	t.Helper()
	for _, n := range notes {
		_, err := s.Insert(n[0], n[1])
		require.NoError(t, err)
	}
}
