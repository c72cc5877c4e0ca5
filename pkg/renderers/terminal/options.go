package terminal

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithSeparator sets the column separator (defaults to two spaces).
func WithSeparator(sep string) Option {
	return func(r *Renderer) {
		if sep != "" {
			r.separator = sep
		}
	}
}

// WithMaxColWidth caps the display width of data cells; longer cells are cut
// and end with "…". Zero leaves cells uncapped.
func WithMaxColWidth(width uint) Option {
	return func(r *Renderer) {
		r.maxColWidth = width
	}
}

// WithoutColor disables ANSI styling regardless of the terminal.
func WithoutColor() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

// WithActionLabels prints action URLs instead of their icon class.
func WithActionLabels() Option {
	return func(r *Renderer) {
		r.actionURLs = true
	}
}
