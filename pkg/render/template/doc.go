// Package template defines the template engine seam renderers depend on.
// Implementations live in sub-packages (gotemplate wraps pongo2).
package template
