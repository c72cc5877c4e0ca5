package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-listgen/pkg/model"
)

// RenderOptions describe per-request data that renderers use to customise
// their output without mutating the listing.
type RenderOptions struct {
	// Viewer is the principal the listing is rendered for. Admin actions are
	// only emitted when Viewer.IsAdmin reports true.
	Viewer model.Viewer
	// TruncateLength caps data cell text. Zero selects DefaultTruncateLength.
	TruncateLength int
	// AlignActionCells pads rows lacking actions (or admin actions) with an
	// empty cell whenever the matching header slot is shown. Off by default,
	// which keeps the per-row conditional cells.
	AlignActionCells bool
	// Document wraps the listing fragment in a minimal page layout.
	Document bool
	// Theme carries go-theme selections used by the document layout.
	Theme *theme.RendererConfig
	// Stylesheet adds an extra stylesheet link to the document layout.
	Stylesheet string
	// IconStylesheet overrides the icon-font stylesheet of the document layout.
	IconStylesheet string

	// Locale, Translator and OnMissing drive LocalizeListing.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// TitleKey translates the listing title when set.
	TitleKey string
}

// Truncation returns the effective truncation length.
func (o RenderOptions) Truncation() int {
	if o.TruncateLength > 0 {
		return o.TruncateLength
	}
	return DefaultTruncateLength
}
