// Package store persists notes in a single-table SQLite database.
package store

import (
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"

	"notepad-sqlite/internal/debug/timing"
	"notepad-sqlite/internal/logger"
	"notepad-sqlite/internal/models"
)

const component = "NoteStore"

const schema = `CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	content TEXT
);`

const (
	insertSQL    = `INSERT INTO notes (title, content) VALUES (?, ?);`
	updateSQL    = `UPDATE notes SET title = ?, content = ? WHERE id = ?;`
	selectAllSQL = `SELECT id, title, content FROM notes ORDER BY id DESC;`
	searchSQL    = `SELECT id, title, content FROM notes WHERE title LIKE ? OR content LIKE ? ORDER BY id DESC;`
	fetchOneSQL  = `SELECT id, title, content FROM notes WHERE id = ? LIMIT 1;`
)

type NoteStore struct {
	db      *sql.DB
	path    string
	logger  logger.Logger
	timings *timing.Tracker
}

type Option func(*NoteStore)

func WithLogger(log logger.Logger) Option {
	return func(s *NoteStore) {
		s.logger = log
	}
}

func WithTimings(tracker *timing.Tracker) Option {
	return func(s *NoteStore) {
		s.timings = tracker
	}
}

// Open opens or creates the database at path and ensures the notes table
// exists. ":memory:" gives a private in-memory database.
func Open(path string, opts ...Option) (*NoteStore, error) {
	s := &NoteStore{
		path:   path,
		logger: logger.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreOpenError{Path: path, Err: err}
	}

	// One connection: the UI is the only actor, and ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &StoreOpenError{Path: path, Err: err}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &SchemaError{Err: err}
	}

	s.db = db
	s.logger.Info(component, "database opened", map[string]interface{}{
		"path": path,
	})

	return s, nil
}

func (s *NoteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.logger.Info(component, "database closed", map[string]interface{}{
		"path": s.path,
	})
	return err
}

// Shutdown adapts Close to the shutdown manager.
func (s *NoteStore) Shutdown() {
	if err := s.Close(); err != nil {
		s.logger.Error(component, err, map[string]interface{}{
			"stage": "shutdown",
		})
	}
}

// Insert appends a note and returns its new id.
func (s *NoteStore) Insert(title, content string) (int64, error) {
	defer s.timings.Start("store.insert").End()

	stmt, err := s.prepare("insert", insertSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(title, content)
	if err != nil {
		return 0, s.fail(&StepError{Op: "insert", Err: err})
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.fail(&StepError{Op: "insert", Err: err})
	}

	s.logger.Debug(component, "note inserted", map[string]interface{}{
		"id": id,
	})
	return id, nil
}

// Update overwrites title and content of note id. An id that matches no
// row is not an error: zero rows change and nil is returned.
func (s *NoteStore) Update(id int64, title, content string) error {
	defer s.timings.Start("store.update").End()

	stmt, err := s.prepare("update", updateSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	res, err := stmt.Exec(title, content, id)
	if err != nil {
		return s.fail(&StepError{Op: "update", Err: err})
	}

	rows, _ := res.RowsAffected()
	s.logger.Debug(component, "note updated", map[string]interface{}{
		"id":   id,
		"rows": rows,
	})
	return nil
}

// Search returns notes whose title or content contains query, newest first.
// An empty query returns every note. The query is bound inside a LIKE
// pattern as typed, so '%' and '_' keep their LIKE meaning.
func (s *NoteStore) Search(query string) ([]models.Note, error) {
	defer s.timings.Start("store.search").End()

	var (
		stmt *sql.Stmt
		err  error
		args []interface{}
	)
	if query == "" {
		stmt, err = s.prepare("search", selectAllSQL)
	} else {
		pattern := "%" + query + "%"
		args = []interface{}{pattern, pattern}
		stmt, err = s.prepare("search", searchSQL)
	}
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, s.fail(&StepError{Op: "search", Err: err})
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, s.fail(&StepError{Op: "search", Err: err})
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(&StepError{Op: "search", Err: err})
	}

	return notes, nil
}

// FetchOne loads a single note. A missing id reports found=false, not an error.
func (s *NoteStore) FetchOne(id int64) (models.Note, bool, error) {
	defer s.timings.Start("store.fetch").End()

	stmt, err := s.prepare("fetch", fetchOneSQL)
	if err != nil {
		return models.Note{}, false, err
	}
	defer stmt.Close()

	note, err := scanNote(stmt.QueryRow(id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, false, nil
	}
	if err != nil {
		return models.Note{}, false, s.fail(&StepError{Op: "fetch", Err: err})
	}

	return note, true, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row scanner) (models.Note, error) {
	var (
		note    models.Note
		title   sql.NullString
		content sql.NullString
	)
	if err := row.Scan(&note.ID, &title, &content); err != nil {
		return models.Note{}, err
	}
	note.Title = title.String
	note.Content = content.String
	return note, nil
}

func (s *NoteStore) prepare(op, query string) (*sql.Stmt, error) {
	if s.db == nil {
		return nil, s.fail(&QueryPrepareError{Op: op, Err: errors.New("store is closed")})
	}
	stmt, err := s.db.Prepare(query)
	if err != nil {
		return nil, s.fail(&QueryPrepareError{Op: op, Err: err})
	}
	return stmt, nil
}

func (s *NoteStore) fail(err error) error {
	s.logger.Error(component, err, map[string]interface{}{
		"path": s.path,
	})
	return err
}
