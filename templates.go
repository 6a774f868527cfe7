package formsynth

import (
	"io/fs"

	"github.com/goliatone/go-formsynth/pkg/assets"
	"github.com/goliatone/go-formsynth/pkg/markup"
)

// EmbeddedTemplates exposes the built-in document templates so callers can
// reuse or extend them without importing the markup package directly.
func EmbeddedTemplates() fs.FS {
	return markup.TemplatesFS()
}

// AssetsFS exposes the embedded placeholder image so applications can serve
// it next to compiled markup.
//
// Typical mount:
//
//	mux.Handle("/src/",
//	  http.StripPrefix("/src/",
//	    http.FileServerFS(formsynth.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return assets.FS()
}
