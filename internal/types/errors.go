package types

import "fmt"

// ConnectionError is raised while connecting a retained dialect, before any schema mutation.
type ConnectionError struct {
	Dialect Dialect
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: failed to connect: %v", e.Dialect, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type SchemaError struct {
	Dialect Dialect
	Table   string
	Op      string
	Err     error
}

func (e *SchemaError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: failed to %s: %v", e.Dialect, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: failed to %s for table %s: %v", e.Dialect, e.Op, e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ShapeMismatchError reports a seed tuple whose arity differs from its column list.
type ShapeMismatchError struct {
	Table string
	Index int
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("table %s: row %d has %d values but %d columns were declared", e.Table, e.Index, e.Got, e.Want)
}

type SeedError struct {
	Dialect Dialect
	Table   string
	Err     error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("%s: failed to seed table %s: %v", e.Dialect, e.Table, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

type SequenceError struct {
	Dialect  Dialect
	Sequence string
	Err      error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: failed to restart sequence %s: %v", e.Dialect, e.Sequence, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
