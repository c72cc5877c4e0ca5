package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-listgen/pkg/model"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a
// translation key is configured but no Translator was supplied.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. params carries a {"default": fallback} map as its first entry.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// LocalizeListing returns a copy of listing with its title and first-row
// headers translated. Headers are translated only when the first row carries
// HeaderKeys; blank keys keep the literal header. Rows other than the first
// are shared with the input, never mutated.
func LocalizeListing(listing model.Listing, opts RenderOptions) model.Listing {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	out := listing
	if key := strings.TrimSpace(opts.TitleKey); key != "" {
		out.Title = translate(opts.Locale, key, listing.Title, opts.Translator, onMissing)
	}

	if len(listing.Rows) == 0 || len(listing.Rows[0].HeaderKeys) == 0 {
		return out
	}

	first := listing.Rows[0]
	headers := make([]string, len(first.Headers))
	copy(headers, first.Headers)
	for i := range headers {
		if i >= len(first.HeaderKeys) {
			break
		}
		headers[i] = translate(opts.Locale, first.HeaderKeys[i], headers[i], opts.Translator, onMissing)
	}
	first.Headers = headers

	out.Rows = make([]model.Row, len(listing.Rows))
	copy(out.Rows, listing.Rows)
	out.Rows[0] = first
	return out
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	params := []any{map[string]any{"default": fallback}}
	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	if len(params) > 0 {
		if defaults, ok := params[0].(map[string]any); ok {
			if fallback, ok := defaults["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}
