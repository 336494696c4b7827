package csvparser

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn   = errors.New("missing required column")
	ErrMalformedNumber = errors.New("malformed number")
	ErrMissingValue    = errors.New("missing value")
)

// LoadError reports which row and field of which table made the load fail.
type LoadError struct {
	File  string
	Line  int
	Field string
	Msg   string
	Err   error
}

func (e *LoadError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	field := ""
	if e.Field != "" {
		field = fmt.Sprintf(" field %q", e.Field)
	}
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("load %s%s: %s", loc, field, msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
