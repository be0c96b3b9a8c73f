package parser

import (
	"errors"
	"fmt"
)

//ErrParameterFormat is returned when a parameter line lacks a field
var ErrParameterFormat = errors.New("incorrect parameter format")

//LineError reports a failure on a given line of an input file
type LineError struct {
	Kind string // "data" or "parameter"
	Line int    // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid %s at line #%d: %s", e.Kind, e.Line, e.Err.Error())
}

//Unwrap returns the underlying cause
func (e *LineError) Unwrap() error {
	return e.Err
}
