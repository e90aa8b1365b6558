package domain

import "fmt"

// SchemaError is returned when a required column is missing
type SchemaError struct {
	Op     string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: column %q not found", e.Op, e.Column)
}

// ParseError describes a single value that could not be coerced
type ParseError struct {
	Column string
	Row    int
	Value  any
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %q value %v: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when an input source does not exist
type NotFoundError struct {
	Source string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file does not exist: %s", e.Source)
}
