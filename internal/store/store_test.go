package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad-sqlite/internal/debug/timing"
	"notepad-sqlite/internal/models"
)

func openMemory(t *testing.T, opts ...Option) *NoteStore {
	t.Helper()
	s, err := Open(":memory:", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesFileAndTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Insert("first", "body")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	notes, err := reopened.Search("")
	require.NoError(t, err)
	assert.Equal(t, []models.Note{{ID: 1, Title: "first", Content: "body"}}, notes)
}

func TestOpenMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "notes.db")

	_, err := Open(path)
	require.Error(t, err)

	var openErr *StoreOpenError
	assert.True(t, errors.As(err, &openErr))
	assert.Equal(t, path, openErr.Path)
}

func TestOpenReadOnlyFailsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := Open("file:" + path + "?mode=ro")
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestOpenNotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.db")
	require.NoError(t, os.WriteFile(path, []byte("this is definitely not an sqlite file, just text padding it out"), 0644))

	_, err := Open(path)
	require.Error(t, err)

	var openErr *StoreOpenError
	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &openErr) || errors.As(err, &schemaErr))
}

func TestInsertThenSearchHead(t *testing.T) {
	s := openMemory(t)

	_, err := s.Insert("older", "a")
	require.NoError(t, err)
	id, err := s.Insert("Groceries", "milk eggs")
	require.NoError(t, err)

	notes, err := s.Search("")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, models.Note{ID: id, Title: "Groceries", Content: "milk eggs"}, notes[0])
	assert.Greater(t, notes[0].ID, notes[1].ID)
}

func TestSearchFilter(t *testing.T) {
	s := openMemory(t)
	_, err := s.Insert("Shopping", "milk eggs")
	require.NoError(t, err)
	_, err = s.Insert("Work", "meeting notes")
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []int64
	}{
		{"milk", []int64{1}},
		{"notes", []int64{2}},
		{"Work", []int64{2}},
		{"e", []int64{2, 1}},
		{"xyz", []int64{}},
		{"", []int64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			notes, err := s.Search(tt.query)
			require.NoError(t, err)

			ids := make([]int64, 0, len(notes))
			for _, n := range notes {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearchEmptyStore(t *testing.T) {
	s := openMemory(t)

	notes, err := s.Search("")
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestTextIsPreserved(t *testing.T) {
	s := openMemory(t)
	title := "  spaced title\t"
	content := "line one\r\nline two  \n\n  ünïcödé ✓"

	id, err := s.Insert(title, content)
	require.NoError(t, err)

	note, found, err := s.FetchOne(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, title, note.Title)
	assert.Equal(t, content, note.Content)
}

func TestUpdate(t *testing.T) {
	s := openMemory(t)
	id, err := s.Insert("draft", "hello")
	require.NoError(t, err)

	require.NoError(t, s.Update(id, "final", "hello world"))

	note, found, err := s.FetchOne(id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.Note{ID: id, Title: "final", Content: "hello world"}, note)
}

func TestUpdateMissingIDIsSilent(t *testing.T) {
	s := openMemory(t)
	_, err := s.Insert("only", "note")
	require.NoError(t, err)

	assert.NoError(t, s.Update(99, "ghost", "nothing"))

	notes, err := s.Search("")
	require.NoError(t, err)
	assert.Equal(t, []models.Note{{ID: 1, Title: "only", Content: "note"}}, notes)
}

func TestFetchOneNotFound(t *testing.T) {
	s := openMemory(t)

	note, found, err := s.FetchOne(42)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.Note{}, note)
}

func TestNullColumnsReadAsEmpty(t *testing.T) {
	s := openMemory(t)
	_, err := s.db.Exec(`INSERT INTO notes (title, content) VALUES (NULL, NULL)`)
	require.NoError(t, err)

	notes, err := s.Search("")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "", notes[0].Title)
	assert.Equal(t, "", notes[0].Content)
}

func TestOperationsAfterClose(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Insert("t", "c")
	var prepErr *QueryPrepareError
	assert.True(t, errors.As(err, &prepErr))

	_, err = s.Search("")
	assert.True(t, errors.As(err, &prepErr))

	_, _, err = s.FetchOne(1)
	assert.True(t, errors.As(err, &prepErr))

	assert.True(t, errors.As(s.Update(1, "t", "c"), &prepErr))
}

func TestMissingTableFailsOperation(t *testing.T) {
	s := openMemory(t)
	_, err := s.db.Exec(`DROP TABLE notes`)
	require.NoError(t, err)

	// The driver may compile lazily, so the failure can surface at either stage.
	_, err = s.Search("")
	require.Error(t, err)
	var prepErr *QueryPrepareError
	var stepErr *StepError
	assert.True(t, errors.As(err, &prepErr) || errors.As(err, &stepErr))
	assert.Contains(t, err.Error(), "search")
}

func TestTimingsRecorded(t *testing.T) {
	tracker := timing.NewTracker()
	s := openMemory(t, WithTimings(tracker))

	_, err := s.Insert("t", "c")
	require.NoError(t, err)
	_, err = s.Search("")
	require.NoError(t, err)
	_, _, err = s.FetchOne(1)
	require.NoError(t, err)
	require.NoError(t, s.Update(1, "t", "d"))

	assert.Len(t, tracker.Timings("store.insert"), 1)
	assert.Len(t, tracker.Timings("store.search"), 1)
	assert.Len(t, tracker.Timings("store.fetch"), 1)
	assert.Len(t, tracker.Timings("store.update"), 1)
}
