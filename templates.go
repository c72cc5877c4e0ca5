package listgen

import (
	"io/fs"

	vanilla "github.com/goliatone/go-listgen/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in list templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
