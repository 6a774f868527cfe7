package render

import (
	"errors"
	"fmt"
)

// ErrRenderBackend matches any RenderBackendError via errors.Is.
var ErrRenderBackend = errors.New("render: backend failed")

// RenderBackendError reports a failed rasterization. Detail carries any
// diagnostic output captured from the backend.
type RenderBackendError struct {
	Backend string
	Output  string
	Detail  string
	Err     error
}

func (e *RenderBackendError) Error() string {
	msg := fmt.Sprintf("render: backend %q failed to produce %s: %v", e.Backend, e.Output, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *RenderBackendError) Unwrap() error {
	return e.Err
}

func (e *RenderBackendError) Is(target error) bool {
	return target == ErrRenderBackend
}
