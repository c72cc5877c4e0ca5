package render

import (
	"fmt"
	"reflect"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// LocaleKey selects the field/key used to infer locale from template data
	// when callers pass a struct or map instead of a raw string.
	LocaleKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers suitable for vanilla.WithTemplateFuncs so
// custom list templates can translate strings inline:
//
//	{{ translate(locale, "listing.empty") }}
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}

	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	return map[string]any{
		translateName: func(localeSrc any, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			locale := resolveLocale(localeSrc, localeKey)
			if t == nil {
				return onMissing(locale, key, params, ErrMissingTranslator)
			}
			msg, err := t.Translate(locale, key, params...)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(locale, key, params, err)
			}
			return msg
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return data
	case map[string]string:
		return data[key]
	case map[string]any:
		if v, ok := data[key]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
		return ""
	}

	value := reflect.ValueOf(src)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ""
	}
	field := value.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, key)
	})
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
