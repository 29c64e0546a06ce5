package store

import "fmt"

// StoreOpenError means the database file could not be opened. Fatal at startup.
type StoreOpenError struct {
	Path string
	Err  error
}

func (e *StoreOpenError) Error() string {
	return fmt.Sprintf("open database %s: %v", e.Path, e.Err)
}

func (e *StoreOpenError) Unwrap() error { return e.Err }

// SchemaError means the notes table could not be created. Fatal at startup.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("create notes table: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// QueryPrepareError means a statement failed to compile.
type QueryPrepareError struct {
	Op  string
	Err error
}

func (e *QueryPrepareError) Error() string {
	return fmt.Sprintf("%s: prepare: %v", e.Op, e.Err)
}

func (e *QueryPrepareError) Unwrap() error { return e.Err }

// StepError means a prepared statement failed while executing or reading rows.
type StepError struct {
	Op  string
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step: %v", e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
