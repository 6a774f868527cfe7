package markup

import (
	"embed"
	"io/fs"
)

// DocumentTemplate is the template path rendered for every layout.
const DocumentTemplate = "templates/document.tmpl"

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can copy and
// customise it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
