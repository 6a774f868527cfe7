package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat matches any InputFormatError via errors.Is.
	ErrInputFormat = errors.New("layout: input format error")
	// ErrMissingGeometry matches any MissingGeometryError via errors.Is.
	ErrMissingGeometry = errors.New("layout: missing geometry")
)

// InputFormatError reports a document that is unparsable or does not have
// the expected shape.
type InputFormatError struct {
	Source string
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("layout: invalid input %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("layout: invalid input: %v", e.Err)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

func (e *InputFormatError) Is(target error) bool {
	return target == ErrInputFormat
}

// MissingGeometryError reports an element without coordinates.
type MissingGeometryError struct {
	Index  int
	Source string
}

func (e *MissingGeometryError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("layout: element %d in %s has no coordinates", e.Index, e.Source)
	}
	return fmt.Sprintf("layout: element %d has no coordinates", e.Index)
}

func (e *MissingGeometryError) Is(target error) bool {
	return target == ErrMissingGeometry
}
