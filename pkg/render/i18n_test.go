package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizeListing_UsesKeysAndFallbacks(t *testing.T) {
	listing := model.Listing{
		Title: "List genus",
		Rows: []model.Row{
			{
				Headers:    []string{"Name", "Family", "Species list"},
				HeaderKeys: []string{"genus.name", "", "genus.species"},
				Columns:    []model.Cell{{Value: "Rosa"}, {Value: "Rosaceae"}, {Value: 2}},
			},
			{Headers: []string{"Name"}, Columns: []model.Cell{{Value: "Malus"}}},
		},
	}

	got := render.LocalizeListing(listing, render.RenderOptions{
		Locale:     "es",
		TitleKey:   "genus.list.title",
		Translator: stubTranslator{"genus.name": "Nombre", "genus.list.title": "Lista de géneros"},
	})

	if got.Title != "Lista de géneros" {
		t.Fatalf("expected translated title, got %q", got.Title)
	}
	want := []string{"Nombre", "Family", "Species list"}
	if diff := cmp.Diff(want, got.Rows[0].Headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if listing.Rows[0].Headers[0] != "Name" {
		t.Fatalf("input listing must not be mutated")
	}
}

func TestLocalizeListing_NoTranslatorUsesHandler(t *testing.T) {
	listing := model.Listing{
		Title: "",
		Rows:  []model.Row{{Headers: []string{""}, HeaderKeys: []string{"genus.name"}}},
	}

	var gotErr error
	got := render.LocalizeListing(listing, render.RenderOptions{
		TitleKey: "genus.title",
		OnMissing: func(_ string, key string, _ []any, err error) string {
			gotErr = err
			return "[" + key + "]"
		},
	})

	if got.Title != "[genus.title]" || got.Rows[0].Headers[0] != "[genus.name]" {
		t.Fatalf("unexpected localization: %#v", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestLocalizeListing_DefaultHandlerFallsBackToKey(t *testing.T) {
	listing := model.Listing{Rows: []model.Row{{Headers: []string{""}, HeaderKeys: []string{"genus.name"}}}}
	got := render.LocalizeListing(listing, render.RenderOptions{Translator: stubTranslator{}})
	if got.Rows[0].Headers[0] != "genus.name" {
		t.Fatalf("expected key fallback, got %q", got.Rows[0].Headers[0])
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(stubTranslator{"listing.empty": "Nada"}, render.TemplateI18nConfig{})

	translate, ok := funcs["translate"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("translate helper has unexpected type %T", funcs["translate"])
	}
	if got := translate("es", "listing.empty"); got != "Nada" {
		t.Fatalf("translate: %q", got)
	}
	if got := translate("es", "listing.other"); got != "listing.other" {
		t.Fatalf("missing translation should fall back to key, got %q", got)
	}

	current, ok := funcs["current_locale"].(func(any) string)
	if !ok {
		t.Fatalf("current_locale helper has unexpected type %T", funcs["current_locale"])
	}
	if got := current(map[string]any{"locale": "fr"}); got != "fr" {
		t.Fatalf("current_locale map: %q", got)
	}
	if got := current(struct{ Locale string }{Locale: "de"}); got != "de" {
		t.Fatalf("current_locale struct: %q", got)
	}
}
