package template

import (
	"io"
)

// TemplateRenderer is the contract the markup compiler renders through.
// Implementations return the rendered text and also copy it to any writers
// supplied in out. Values passed to GlobalContext are visible to every
// template; per-render data takes precedence.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
