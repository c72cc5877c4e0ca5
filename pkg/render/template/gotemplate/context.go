package gotemplate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// toContext turns view data into a pongo2.Context. Structs are addressed by
// their json names: every non-function value goes through one JSON round
// trip, so numbers arrive as float64. Top-level functions are kept as
// callables.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}

	var top map[string]any
	switch v := data.(type) {
	case pongo2.Context:
		top = v
	case map[string]any:
		top = v
	default:
		decoded, err := roundTrip(v)
		if err != nil {
			return nil, err
		}
		m, ok := decoded.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("view data must encode to an object, got %T", decoded)
		}
		return pongo2.Context(m), nil
	}

	out := make(pongo2.Context, len(top))
	plain := make(map[string]any, len(top))
	for key, value := range top {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if isFunc(value) {
			out[key] = value
			continue
		}
		plain[key] = value
	}
	if len(plain) == 0 {
		return out, nil
	}

	decoded, err := roundTrip(plain)
	if err != nil {
		return nil, err
	}
	for key, value := range decoded.(map[string]any) {
		out[key] = value
	}
	return out, nil
}

func roundTrip(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
