package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	listTemplate     = "templates/list.tmpl"
	documentTemplate = "templates/document.tmpl"
)

// DefaultIconStylesheet is linked by the document layout when neither the
// options nor the theme provide an icon-font stylesheet.
const DefaultIconStylesheet = "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css"

// TemplatesFS exposes the embedded template bundle for consumers that want to
// copy or extend the built-in list templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
